// Package docs provides generated OpenAPI documentation.
//
// Docket API
//
//	@title			Docket API
//	@version		1.0
//	@description	Document review API for inspecting AI-extracted fields on scanned documents.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/docketlabs/docket
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -d ../ -g docs/doc.go -o ./swagger --parseDependency --parseInternal
