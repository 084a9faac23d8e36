package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <usuario>",
		Short: "Inicia sesión y muestra el token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Print("Contraseña: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}

			token, err := newClient().Login(args[0], password)
			if err != nil {
				return err
			}

			fmt.Println("Sesión iniciada. Exporta el token para las llamadas siguientes:")
			fmt.Printf("  export HERMANAR_TOKEN=%s\n", token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (se pide por consola si falta)")
	return cmd
}
