// Generates the ent client for the receipt index into gen/ent.
// Run from the repository root: go run ./db/ent
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/tkarvonen/huoltokirja/gen/ent",
			Schema:  "github.com/tkarvonen/huoltokirja/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
