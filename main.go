package main

import (
	"flag"
	"log"

	"github.com/keej24/visita-bohol-system-sub001/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
	if !*shouldRunMigrations && !*shouldRunServer {
		log.Fatal("specify -migrations and/or -server")
	}
}
