package main

import (
    "os"

    "backend/config"
    "backend/routes"
)

func main() {
    db := config.ConnectDB()
    r := routes.SetupRouter(db)

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    r.Run(":" + port)
}
