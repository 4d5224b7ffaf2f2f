package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"careerhub-backend/config"
	apiv1 "careerhub-backend/controllers/v1"
	"careerhub-backend/controllers/v1/dict"
	"careerhub-backend/fiberlog"
	"careerhub-backend/initializers"
	"careerhub-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)
	apiv1.InitUserApiRouters(apiV1)
	apiv1.InitStudentApiRouters(apiV1)
	apiv1.InitVacancyApiRouters(apiV1)
	apiv1.InitMatchingApiRouters(apiV1)
	apiv1.InitFavoriteApiRouters(apiV1)
	apiv1.InitCompareApiRouters(apiV1)
	apiv1.InitGptApiRouters(apiV1)

	//dict
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dicts.Use(middleware.AuthorizationRequired())
	dict.InitSkillDictApiRouters(dicts)
	dict.InitEducationLevelDictApiRouters(dicts)
	dict.InitScheduleDictApiRouters(dicts)
	dict.InitSpecializationDictApiRouters(dicts)
	dict.InitLocationDictApiRouters(dicts)
	dict.InitCourseDictApiRouters(dicts)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
