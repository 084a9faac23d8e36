package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	hermanoDTO "hermanar_backend/internals/features/hermanos/dto"
)

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("identificador no válido: %s", arg)
	}
	return uint(id), nil
}

func hermanosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hermanos",
		Short: "Consulta y gestión de hermanos",
	}
	cmd.AddCommand(hermanosListCmd())
	cmd.AddCommand(hermanosShowCmd())
	cmd.AddCommand(hermanosAddCmd())
	cmd.AddCommand(hermanosBajaCmd())
	cmd.AddCommand(hermanosDeleteCmd())
	return cmd
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func hermanosAddCmd() *cobra.Command {
	var req hermanoDTO.HermanoRequest
	var dni, telefono, email, direccion, segundoApellido string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Da de alta un hermano",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.SegundoApellido = optional(segundoApellido)
			req.DNI = optional(dni)
			req.Telefono = optional(telefono)
			req.Email = optional(email)
			req.Direccion = optional(direccion)
			req.Activo = true

			h, err := newClient().CreateHermano(req)
			if err != nil {
				return err
			}
			fmt.Printf("Hermano creado con número %s (id %d)\n", h.NumeroHermano, h.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.NumeroHermano, "numero", "", "número de hermano (autogenerado si se omite)")
	cmd.Flags().StringVar(&req.Nombre, "nombre", "", "nombre")
	cmd.Flags().StringVar(&req.PrimerApellido, "apellido1", "", "primer apellido")
	cmd.Flags().StringVar(&segundoApellido, "apellido2", "", "segundo apellido")
	cmd.Flags().StringVar(&req.FechaAlta, "alta", "", "fecha de alta (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dni, "dni", "", "DNI")
	cmd.Flags().StringVar(&telefono, "telefono", "", "teléfono")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&direccion, "direccion", "", "dirección postal")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("apellido1")
	_ = cmd.MarkFlagRequired("alta")
	return cmd
}

func hermanosListCmd() *cobra.Command {
	var soloActivos bool
	var buscar string
	var familiaID uint

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista hermanos",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			var (
				hermanos []hermanoDTO.HermanoResponse
				err      error
			)
			switch {
			case buscar != "":
				hermanos, err = c.SearchHermanos(buscar)
			case familiaID != 0:
				hermanos, err = c.GetHermanosByFamilia(familiaID)
			case soloActivos:
				hermanos, err = c.GetHermanosActivos()
			default:
				hermanos, err = c.GetAllHermanos()
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNÚMERO\tNOMBRE\tDNI\tTELÉFONO\tACTIVO")
			for _, h := range hermanos {
				nombre := h.Nombre + " " + h.PrimerApellido
				if h.SegundoApellido != nil {
					nombre += " " + *h.SegundoApellido
				}
				activo := "no"
				if h.Activo {
					activo = "sí"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					h.ID, h.NumeroHermano, nombre, deref(h.DNI), deref(h.Telefono), activo)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&soloActivos, "activos", false, "solo hermanos activos")
	cmd.Flags().StringVar(&buscar, "buscar", "", "búsqueda por nombre, número o DNI")
	cmd.Flags().UintVar(&familiaID, "familia", 0, "solo hermanos de la familia indicada")
	return cmd
}

func hermanosShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Muestra la ficha de un hermano",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			h, err := newClient().GetHermano(id)
			if err != nil {
				return err
			}

			fmt.Printf("Número:     %s\n", h.NumeroHermano)
			fmt.Printf("Nombre:     %s %s", h.Nombre, h.PrimerApellido)
			if h.SegundoApellido != nil {
				fmt.Printf(" %s", *h.SegundoApellido)
			}
			fmt.Println()
			fmt.Printf("DNI:        %s\n", deref(h.DNI))
			fmt.Printf("Alta:       %s\n", h.FechaAlta)
			fmt.Printf("Teléfono:   %s\n", deref(h.Telefono))
			fmt.Printf("Email:      %s\n", deref(h.Email))
			fmt.Printf("Dirección:  %s\n", deref(h.Direccion))
			if h.FamiliaID != nil {
				fmt.Printf("Familia:    %d\n", *h.FamiliaID)
			}
			if h.Activo {
				fmt.Println("Estado:     activo")
			} else {
				fmt.Println("Estado:     baja")
			}
			return nil
		},
	}
}

func hermanosBajaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baja <id>",
		Short: "Da de baja a un hermano sin borrar su historial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := newClient().SetHermanoInactive(id); err != nil {
				return err
			}
			fmt.Println("Hermano dado de baja")
			return nil
		},
	}
}

func hermanosDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Elimina un hermano y sus cuotas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			confirmar := confirmarConsola()
			if !confirmar(fmt.Sprintf("Se eliminará el hermano %d junto con todas sus cuotas. Esta acción no se puede deshacer.", id)) {
				return nil
			}
			if err := newClient().DeleteHermano(id); err != nil {
				return err
			}
			fmt.Println("Hermano eliminado")
			return nil
		},
	}
}
