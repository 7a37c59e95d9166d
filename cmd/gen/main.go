// Command gen generates typed gorm query helpers for the postgres comment store.
package main

import (
	"bitablog/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.CommentModel{})

	g.Execute()
}
