// Command demo builds a few sample values with the helper packages and logs them.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/typed-helpers/internal/config"
	"github.com/typed-helpers/pkg/collections"
	"github.com/typed-helpers/pkg/formatters"
	"github.com/typed-helpers/pkg/geometry"
	"github.com/typed-helpers/pkg/logger"
	"github.com/typed-helpers/pkg/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(config.LogConfig{Level: "info", Format: "pretty"}, "typed-helpers-demo")
		fallback.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	run(logger.New(cfg.Log, cfg.Service+"-demo"))
}

func run(log zerolog.Logger) {
	year := 1949

	user := models.NewUser(1, "Ivan Ivanov", models.WithEmail("ivan@aboba.com"))
	book := models.NewBook(models.Book{Title: "1984", Author: "George Orwell", Year: &year, Genre: models.GenreFiction})
	circleArea := geometry.CalculateArea(geometry.ShapeCircle, 5)
	activeColor := models.StatusColor(models.StatusActive)
	capitalized := formatters.CapitalizeFirstLetter(" hello world   ", false)
	numbers := []int{1, 2, 3}
	first, _ := collections.FirstElement(numbers)

	log.Info().Interface("user", user).Msg("user")
	log.Info().Interface("book", book).Msg("book")
	log.Info().Float64("area", circleArea).Msg("circle area")
	log.Info().Str("color", activeColor).Msg("active color")
	log.Info().Str("result", capitalized).Msg("capitalized")
	log.Info().Ints("numbers", numbers).Msg("numbers")
	log.Info().Int("first", first).Msg("first number")
}
