package docs

// @title           Car Rental Web API
// @version         1.0
// @description     Page action endpoints of the car rental web frontend. All business data is served by the remote rental REST API; these endpoints only relay requests on behalf of the logged-in browser session.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:4000
// @BasePath  /
