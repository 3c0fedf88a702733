// @title Slide Service API
// @version 1.0.0
// @description Сервис слайд-шоу: опрашивает удаленный источник, выбирает слайд по порогам и публикует изменения в Kafka и MQTT.
// @host localhost:8082
// @BasePath /api/v1
package main

import "github.com/iwtcode/slideService/internal/app"

func main() {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
}
