package main

import (
	appthandler "salonbook/internal/appointments/handler"
	apptrepository "salonbook/internal/appointments/repository"
	apptservice "salonbook/internal/appointments/service"
	apptvalidator "salonbook/internal/appointments/validator"
	salonhandler "salonbook/internal/salons/handler"
	salonrepository "salonbook/internal/salons/repository"
	salonservice "salonbook/internal/salons/service"
	salonvalidator "salonbook/internal/salons/validator"
	slothandler "salonbook/internal/timeslots/handler"
	slotrepository "salonbook/internal/timeslots/repository"
	slotservice "salonbook/internal/timeslots/service"
	slotvalidator "salonbook/internal/timeslots/validator"
	"salonbook/pkg/app"
	"salonbook/pkg/config"
	"salonbook/pkg/contracts"
	"salonbook/pkg/events"
)

const ServiceName = "salonbook"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting salonbook service")

	publisher := events.FromConfig(cfg.KafkaBrokers, cfg.KafkaTopicAppointment, cfg.Log)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(initHandlers(cfg, publisher)...)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	salonValidator := salonvalidator.NewSalonValidator(cfg.Log)
	salonRepo := salonrepository.NewMongoSalonRepository(cfg)
	professionalRepo := salonrepository.NewMongoProfessionalRepository(cfg)
	salonService := salonservice.NewSalonService(salonRepo, salonValidator, cfg)
	professionalService := salonservice.NewProfessionalService(professionalRepo, salonRepo, salonValidator, cfg)

	slotValidator := slotvalidator.NewTimeSlotValidator(cfg.Log)
	slotRepo := slotrepository.NewMongoTimeSlotRepository(cfg)
	slotService := slotservice.NewTimeSlotService(slotRepo, slotValidator, cfg)
	generator := slotservice.NewHorizonGenerator(slotRepo, professionalRepo, cfg)

	bookingValidator := apptvalidator.NewBookingValidator(cfg.Log)
	apptRepo := apptrepository.NewMongoAppointmentRepository(cfg)
	scheduler := apptservice.NewSchedulerService(apptRepo, slotRepo, bookingValidator, publisher, cfg)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		salonhandler.NewSalonHandler(salonService, professionalService, cfg.Log),
		slothandler.NewTimeSlotHandler(slotService, cfg.Log),
		appthandler.NewAppointmentHandler(scheduler, generator, cfg.Log),
	}
}
