package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	cuotaDTO "hermanar_backend/internals/features/cuotas/dto"
	cuotaModel "hermanar_backend/internals/features/cuotas/model"
	"hermanar_backend/pkg/workflow"
)

func cuotasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cuotas",
		Short: "Consulta, generación y pago de cuotas",
	}
	cmd.AddCommand(cuotasListCmd())
	cmd.AddCommand(cuotasAddCmd())
	cmd.AddCommand(cuotasToggleCmd())
	cmd.AddCommand(cuotasGenerarCmd())
	cmd.AddCommand(cuotasPagarCmd())
	cmd.AddCommand(cuotasEstadisticasCmd())
	cmd.AddCommand(cuotasExportCmd())
	return cmd
}

func cuotasExportCmd() *cobra.Command {
	var anio int
	var salida string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta el listado de cuotas a un fichero XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filtroAnio *int
			if anio != 0 {
				filtroAnio = &anio
			}
			payload, nombre, err := newClient().ExportCuotas(filtroAnio)
			if err != nil {
				return err
			}
			if salida == "" {
				salida = nombre
			}
			if err := os.WriteFile(salida, payload, 0o644); err != nil {
				return err
			}
			fmt.Printf("Exportado a %s (%d bytes)\n", salida, len(payload))
			return nil
		},
	}

	cmd.Flags().IntVar(&anio, "anio", 0, "limitar al año indicado")
	cmd.Flags().StringVarP(&salida, "out", "o", "", "ruta del fichero de salida")
	return cmd
}

func imprimirCuotas(cuotas []cuotaDTO.CuotaResponse, resolver func(uint) (string, string)) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNÚMERO\tHERMANO\tAÑO\tIMPORTE\tESTADO\tFECHA PAGO")
	for _, c := range cuotas {
		nombre, numero := resolver(c.HermanoID)
		estado := "pendiente"
		if c.Pagado {
			estado = "pagada"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t€%.2f\t%s\t%s\n",
			c.ID, numero, nombre, c.Anio, c.Importe, estado, deref(c.FechaPago))
	}
	return w.Flush()
}

func cuotasListCmd() *cobra.Command {
	var anio, estado, buscar string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista cuotas con filtros combinables",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			cuotas, err := c.GetAllCuotas()
			if err != nil {
				return err
			}
			hermanos, err := c.GetAllHermanos()
			if err != nil {
				return err
			}

			byID := workflow.IndexarHermanos(hermanos)
			filtradas := workflow.FiltrarCuotas(cuotas, byID, workflow.FiltroCuotas{
				Anio:     anio,
				Pagado:   estado,
				Busqueda: buscar,
			})

			if err := imprimirCuotas(filtradas, func(hermanoID uint) (string, string) {
				return workflow.ResolverNombre(byID, hermanoID), workflow.ResolverNumero(byID, hermanoID)
			}); err != nil {
				return err
			}

			r := workflow.ResumirCuotas(filtradas)
			fmt.Printf("\n%d cuotas (%d pagadas, %d pendientes) · total €%.2f · pendiente €%.2f\n",
				r.Total, r.Pagadas, r.Pendientes, r.ImporteTotal, r.ImportePendiente)
			return nil
		},
	}

	cmd.Flags().StringVar(&anio, "anio", workflow.FiltroTodos, "año exacto")
	cmd.Flags().StringVar(&estado, "estado", workflow.FiltroTodos, "pagado, pendiente o todos")
	cmd.Flags().StringVar(&buscar, "buscar", "", "búsqueda por nombre o número de hermano")
	return cmd
}

func cuotasAddCmd() *cobra.Command {
	var req cuotaDTO.CuotaRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crea una cuota individual",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient().CreateCuota(req)
			if err != nil {
				return err
			}
			fmt.Printf("Cuota creada (id %d): hermano %d, año %d, €%.2f\n",
				c.ID, c.HermanoID, c.Anio, c.Importe)
			return nil
		},
	}

	cmd.Flags().UintVar(&req.HermanoID, "hermano", 0, "id del hermano")
	cmd.Flags().IntVar(&req.Anio, "anio", 0, "año")
	cmd.Flags().IntVar(&req.Trimestre, "trimestre", 1, "trimestre (1-4)")
	cmd.Flags().Float64Var(&req.Importe, "importe", 0, "importe")
	_ = cmd.MarkFlagRequired("hermano")
	_ = cmd.MarkFlagRequired("anio")
	_ = cmd.MarkFlagRequired("importe")
	return cmd
}

func cuotasToggleCmd() *cobra.Command {
	var despagar bool

	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Conmuta el estado pagado sin registrar fecha ni método",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := newClient().TogglePaid(id, !despagar); err != nil {
				return err
			}
			if despagar {
				fmt.Println("Cuota marcada como pendiente")
			} else {
				fmt.Println("Cuota marcada como pagada")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&despagar, "pendiente", false, "marcar como pendiente en lugar de pagada")
	return cmd
}

func cuotasGenerarCmd() *cobra.Command {
	var anio int
	var importe float64

	cmd := &cobra.Command{
		Use:   "generar",
		Short: "Genera las cuotas anuales de los hermanos activos",
		RunE: func(cmd *cobra.Command, args []string) error {
			flujo := &workflow.GeneracionCuotas{
				Generador: newClient(),
				Confirmar: confirmarConsola(),
				Notificar: newConsoleNotifier(),
				Logger:    newLogger(),
			}
			res := flujo.Ejecutar(anio, importe)
			if res.Cancelado {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&anio, "anio", 0, "año de las cuotas")
	cmd.Flags().Float64Var(&importe, "importe", 0, "importe por hermano")
	return cmd
}

func cuotasPagarCmd() *cobra.Command {
	var metodo, anio, buscar string
	var ids []uint
	var todas bool

	cmd := &cobra.Command{
		Use:   "pagar",
		Short: "Marca como pagadas las cuotas pendientes seleccionadas",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch metodo {
			case cuotaModel.MetodoPagoEfectivo, cuotaModel.MetodoPagoTransferencia,
				cuotaModel.MetodoPagoDomiciliacion, cuotaModel.MetodoPagoBizum:
			default:
				return fmt.Errorf("método de pago no válido: %s", metodo)
			}

			c := newClient()
			flujo := &workflow.PagoMasivo{
				Datos:     c,
				Pagador:   c,
				Confirmar: confirmarConsola(),
				Notificar: newConsoleNotifier(),
				Logger:    newLogger(),
			}
			if err := flujo.Cargar(); err != nil {
				return err
			}

			filtradas := flujo.Filtradas(buscar, anio)
			if todas {
				flujo.ToggleTodas(filtradas)
			} else {
				for _, id := range ids {
					flujo.ToggleSeleccion(id)
				}
			}

			res := flujo.Pagar(metodo)
			if res.Cancelado {
				os.Exit(1)
			}
			if res.Errores > 0 {
				var fallidas []string
				for _, r := range res.Resultados {
					if r.Err != nil {
						fallidas = append(fallidas, fmt.Sprintf("%d", r.CuotaID))
					}
				}
				fmt.Fprintf(os.Stderr, "Cuotas con error: %s\n", strings.Join(fallidas, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&metodo, "metodo", cuotaModel.MetodoPagoEfectivo, "efectivo, transferencia, domiciliacion o bizum")
	cmd.Flags().StringVar(&anio, "anio", workflow.FiltroTodos, "limitar la selección a un año")
	cmd.Flags().StringVar(&buscar, "buscar", "", "limitar la selección por nombre o número")
	cmd.Flags().UintSliceVar(&ids, "ids", nil, "cuotas concretas a pagar")
	cmd.Flags().BoolVar(&todas, "todas", false, "selecciona todas las cuotas de la vista filtrada")
	return cmd
}

func cuotasEstadisticasCmd() *cobra.Command {
	var anio int

	cmd := &cobra.Command{
		Use:   "estadisticas",
		Short: "Resumen de recaudación y morosidad",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filtroAnio *int
			if anio != 0 {
				filtroAnio = &anio
			}
			stats, err := newClient().GetEstadisticasCuotas(filtroAnio)
			if err != nil {
				return err
			}

			fmt.Printf("Total recaudado:   €%.2f\n", stats.TotalRecaudado)
			fmt.Printf("Cuotas pagadas:    %d\n", stats.CuotasPagadas)
			fmt.Printf("Cuotas pendientes: %d\n", stats.CuotasPendientes)
			fmt.Printf("Hermanos al día:   %d\n", stats.HermanosAlDia)
			fmt.Printf("Hermanos morosos:  %d\n", stats.HermanosMorosos)
			return nil
		},
	}

	cmd.Flags().IntVar(&anio, "anio", 0, "limitar al año indicado")
	return cmd
}
