// Command token emite un JWT firmado con JWT_SECRET para operar las rutas de escritura de la API.
//
//	token -sub operador-1 -role bodeguero
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/stock-tracker/pkg/config"
	"github.com/jhoicas/stock-tracker/pkg/jwt"
)

func main() {
	sub := flag.String("sub", "", "subject del token (operador)")
	role := flag.String("role", jwt.RoleBodeguero, "rol: admin | bodeguero | consulta")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if *sub == "" {
		fmt.Fprintln(os.Stderr, "-sub requerido")
		os.Exit(2)
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
