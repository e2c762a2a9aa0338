// Command storemanage gestiona los stocks asociados a una tienda contra la API REST.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/storemanage/internal/application/storemanage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var n notifiedError
		if !errors.As(err, &n) {
			fmt.Fprintln(os.Stderr, "ERROR:", storemanage.ErrorMessage(err))
		}
		os.Exit(1)
	}
}
