package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depreview/internal"
	"github.com/rios0rios0/depreview/internal/infrastructure/controllers"
)

func newContainer() *dig.Container {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}
	return container
}

func injectAppContext() *internal.AppInternal {
	var appInternal *internal.AppInternal
	if err := newContainer().Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectDetectController() *controllers.DetectController {
	var detectController *controllers.DetectController
	if err := newContainer().Invoke(func(dc *controllers.DetectController) {
		detectController = dc
	}); err != nil {
		panic(err)
	}

	return detectController
}
