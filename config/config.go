package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port               string
	StoreBackend       string
	DataDir            string
	MongoURI           string
	UploadDir          string
	GeminiAPIKey       string
	AdviceModel        string
	ImageModel         string
	JWTSecret          string
	SendGridAPIKey     string
	AWSRegion          string
	AWSBucketName      string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	// "file" keeps the four collections as local JSON documents, matching the
	// original single-user deployment. "mongo" stores the same blobs in MongoDB.
	StoreBackend = os.Getenv("STORE_BACKEND")
	if StoreBackend == "" {
		StoreBackend = "file"
	}

	DataDir = os.Getenv("DATA_DIR")
	if DataDir == "" {
		DataDir = "data"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	UploadDir = os.Getenv("UPLOAD_DIR")
	if UploadDir == "" {
		UploadDir = "uploads"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	AdviceModel = os.Getenv("GEMINI_ADVICE_MODEL")
	if AdviceModel == "" {
		AdviceModel = "gemini-2.5-flash"
	}

	ImageModel = os.Getenv("GEMINI_IMAGE_MODEL")
	if ImageModel == "" {
		ImageModel = "gemini-2.5-flash-image"
	}

	JWTSecret = os.Getenv("JWT_SECRET")
	SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")

	AWSRegion = os.Getenv("AWS_REGION")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	GoogleRedirectURL = os.Getenv("GOOGLE_REDIRECT_URL")
	if GoogleRedirectURL == "" {
		GoogleRedirectURL = "http://localhost:8080/auth/google/callback"
	}
}
