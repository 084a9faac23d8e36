// hermanarctl es el cliente de línea de comandos del backend de Hermanar:
// gestión de hermanos, familias y cuotas contra la API remota.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hermanar_backend/pkg/client"
)

var (
	flagServer  string
	flagToken   string
	flagVerbose bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:           "hermanarctl",
	Short:         "Cliente de administración de la hermandad",
	Long:          "hermanarctl gestiona hermanos, familias y cuotas contra el backend de Hermanar.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// .env es opcional; los flags y el entorno mandan
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagServer, "server", envOr("HERMANAR_API_URL", "http://localhost:3000"), "URL base del backend")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", os.Getenv("HERMANAR_TOKEN"), "token de sesión (o HERMANAR_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "traza de llamadas al backend")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "responde sí a todas las confirmaciones")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(hermanosCmd())
	rootCmd.AddCommand(familiasCmd())
	rootCmd.AddCommand(cuotasCmd())
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newLogger() *zap.Logger {
	if flagVerbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

func newClient() *client.Client {
	c := client.New(flagServer, newLogger())
	if flagToken != "" {
		c.SetToken(flagToken)
	}
	return c
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
