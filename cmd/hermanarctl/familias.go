package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	familiaDTO "hermanar_backend/internals/features/familias/dto"
)

func familiasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "familias",
		Short: "Consulta y gestión de familias",
	}
	cmd.AddCommand(familiasListCmd())
	cmd.AddCommand(familiasShowCmd())
	cmd.AddCommand(familiasAddCmd())
	cmd.AddCommand(familiasDeleteCmd())
	return cmd
}

func familiasAddCmd() *cobra.Command {
	var hermanoDireccion uint

	cmd := &cobra.Command{
		Use:   "add <nombre>",
		Short: "Crea una familia",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := familiaDTO.FamiliaRequest{NombreFamilia: args[0]}
			if hermanoDireccion != 0 {
				req.HermanoDireccionID = &hermanoDireccion
			}
			f, err := newClient().CreateFamilia(req)
			if err != nil {
				return err
			}
			fmt.Printf("Familia %q creada (id %d)\n", f.NombreFamilia, f.ID)
			return nil
		},
	}

	cmd.Flags().UintVar(&hermanoDireccion, "direccion-de", 0, "hermano cuya dirección sirve de referencia")
	return cmd
}

func familiasListCmd() *cobra.Command {
	var buscar string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista familias",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()

			var (
				familias []familiaDTO.FamiliaResponse
				err      error
			)
			if buscar != "" {
				familias, err = c.SearchFamilias(buscar)
			} else {
				familias, err = c.GetAllFamilias()
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tDIRECCIÓN DE REFERENCIA")
			for _, f := range familias {
				ref := "-"
				if f.HermanoDireccionID != nil {
					ref = fmt.Sprintf("hermano %d", *f.HermanoDireccionID)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", f.ID, f.NombreFamilia, ref)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&buscar, "buscar", "", "búsqueda por nombre de familia")
	return cmd
}

func familiasShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Muestra una familia con sus totales y dirección",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c := newClient()

			f, err := c.GetFamiliaWithAddress(id)
			if err != nil {
				return err
			}
			stats, err := c.GetFamiliaStats(id)
			if err != nil {
				return err
			}

			fmt.Printf("Familia:   %s\n", f.NombreFamilia)
			fmt.Printf("Hermanos:  %d (%d activos)\n", stats.TotalHermanos, stats.HermanosActivos)
			if f.DireccionPrincipal != nil {
				fmt.Printf("Contacto:  %s\n", f.DireccionPrincipal.NombreHermano)
				fmt.Printf("Dirección: %s\n", deref(f.DireccionPrincipal.Direccion))
				fmt.Printf("Teléfono:  %s\n", deref(f.DireccionPrincipal.Telefono))
				fmt.Printf("Email:     %s\n", deref(f.DireccionPrincipal.Email))
			} else {
				fmt.Println("Sin dirección de referencia establecida")
			}
			return nil
		},
	}
}

func familiasDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Elimina una familia sin hermanos activos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			confirmar := confirmarConsola()
			if !confirmar(fmt.Sprintf("Se eliminará la familia %d. Los hermanos asociados quedarán sin familia.", id)) {
				return nil
			}
			if err := newClient().DeleteFamilia(id); err != nil {
				return err
			}
			fmt.Println("Familia eliminada")
			return nil
		},
	}
}
