/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/planner-api/cmd"

// @title           Workout Planner API
// @version         1.0.0
// @description     Workout planning backend: exercise library, workouts, training plans and a
// @description     video annotation pipeline that cuts annotated ranges into exercise clips with ffmpeg.
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/planner-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
