package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/stylelab/fitting-lab/api"
	"github.com/stylelab/fitting-lab/config"
	"github.com/stylelab/fitting-lab/fitting"
	"github.com/stylelab/fitting-lab/state"
	"github.com/stylelab/fitting-lab/store"
	"github.com/stylelab/fitting-lab/utils"
)

func main() {
	config.LoadConfig()

	// The document store backs the four persisted collections. MongoDB is
	// optional; the default keeps them as JSON files under the data directory.
	var docStore store.Store
	if config.StoreBackend == "mongo" {
		if err := utils.ConnectMongo(config.MongoURI); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		docStore = store.NewMongoStore(utils.Client, utils.DatabaseName)
	} else {
		fs, err := store.NewFileStore(config.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file store: %v", err)
		}
		docStore = fs
		// Accounts still want Mongo even when documents live on disk.
		if err := utils.ConnectMongo(config.MongoURI); err != nil {
			log.Printf("MongoDB unavailable, account endpoints disabled: %v", err)
		}
	}

	st := state.Load(context.Background(), docStore)
	server := api.NewServer(st, fitting.GeminiGenerator{})

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Catalogs and lookbook
	http.HandleFunc("/catalog/", corsMiddleware(server.CatalogHandler))
	http.HandleFunc("/lookbook", corsMiddleware(server.LookbookHandler))

	// Character profiles
	http.HandleFunc("/profiles", corsMiddleware(server.ProfilesHandler))
	http.HandleFunc("/profiles/select", corsMiddleware(server.SelectProfileHandler))

	// Wardrobe
	http.HandleFunc("/wardrobe", corsMiddleware(server.WardrobeHandler))

	// Fitting lab wizard
	http.HandleFunc("/lab/state", corsMiddleware(server.LabStateHandler))
	http.HandleFunc("/lab/select", corsMiddleware(server.SelectOptionHandler))
	http.HandleFunc("/lab/navigate", corsMiddleware(server.NavigateHandler))
	http.HandleFunc("/lab/facet", corsMiddleware(server.SetFacetHandler))
	http.HandleFunc("/lab/clear-wardrobe", corsMiddleware(server.ClearWardrobePicksHandler))

	// Fitting and recommendations
	http.HandleFunc("/fitting", corsMiddleware(api.AuthMiddleware(server.FittingHandler)))
	http.HandleFunc("/recommendations", corsMiddleware(server.RecommendationsHandler))

	// Archive
	http.HandleFunc("/archive", corsMiddleware(server.ArchiveHandler))
	http.HandleFunc("/archive/item", corsMiddleware(server.ArchiveItemHandler))

	// Auth Routes
	http.HandleFunc("/auth/google/login", corsMiddleware(api.GoogleLoginHandler))
	http.HandleFunc("/auth/google/callback", corsMiddleware(api.GoogleCallbackHandler))
	http.HandleFunc("/auth/signup", corsMiddleware(api.SignupHandler))
	http.HandleFunc("/auth/verify-otp", corsMiddleware(api.VerifyOTPHandler))
	http.HandleFunc("/auth/login", corsMiddleware(api.LoginHandler))

	// Serve locally stored images
	http.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadDir))))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
