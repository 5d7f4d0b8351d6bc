// Command tokengen mints an access token for a principal using the server's
// secret and token validity settings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/flagx"
	"github.com/dmitrijs2005/gophdrop/internal/server/auth"
	"github.com/dmitrijs2005/gophdrop/internal/server/config"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
)

func main() {
	cfg := config.LoadConfig()

	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	principal := fs.String("principal", "", "principal to issue the token for")
	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], []string{"-principal"})); err != nil {
		log.Fatal(err)
	}
	if *principal == "" {
		log.Fatalf("%v: -principal is required", common.ErrorValidation)
	}

	tok, err := auth.GenerateToken(models.Principal(*principal), []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tok)
}
