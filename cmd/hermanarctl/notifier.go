package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"hermanar_backend/pkg/workflow"
)

// consoleNotifier escribe los avisos de los flujos en la terminal.
type consoleNotifier struct {
	out io.Writer
	err io.Writer
}

func newConsoleNotifier() *consoleNotifier {
	return &consoleNotifier{out: os.Stdout, err: os.Stderr}
}

func (n *consoleNotifier) Success(mensaje string) {
	fmt.Fprintln(n.out, mensaje)
}

func (n *consoleNotifier) Error(mensaje string) {
	fmt.Fprintln(n.err, mensaje)
}

// confirmarConsola muestra el mensaje y lee sí/no de la entrada estándar.
// Con --yes no pregunta, solo deja constancia del mensaje.
func confirmarConsola() workflow.ConfirmFunc {
	return func(mensaje string) bool {
		fmt.Println(mensaje)
		if flagYes {
			return true
		}
		fmt.Print("¿Continuar? [s/N]: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		resp := strings.ToLower(strings.TrimSpace(line))
		return resp == "s" || resp == "si" || resp == "sí"
	}
}
