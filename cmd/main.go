// cmd/main.go
package main

import (
	"github.com/andrew-chang-dewitt/hoops/app"
)

// @title           Hoops API
// @version         1.0
// @description     A web API for a personal budgeting application.

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
