// @title           PetTime API
// @version         1.0
// @description     API de agendamento de banho e tosa (documentação Swagger).
// @contact.name    PetTime
// @contact.email   contato@pettime.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "pettime_backend/internal/app"

func main() {
	app.Run()
}
