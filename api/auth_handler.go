package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/stylelab/fitting-lab/config"
	"github.com/stylelab/fitting-lab/utils"
)

// Config variables are populated by LoadConfig after init(), so the oauth
// config has to be built lazily inside the handlers.
func getOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  config.GoogleRedirectURL,
		ClientID:     config.GoogleClientID,
		ClientSecret: config.GoogleClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleLoginHandler handles the login request by redirecting to Google
func GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Google Login API]")

	oauthConfig := getOauthConfig()
	// State should be randomized for security in production
	url := oauthConfig.AuthCodeURL("random-state")

	utils.AddToLogMessage(&logMessageBuilder, "Redirecting to Google Auth")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler handles the callback from Google
func GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Google Callback API]")

	state := r.FormValue("state")
	if state != "random-state" {
		utils.AddToLogMessage(&logMessageBuilder, "Invalid state")
		utils.RespondError(w, &logMessageBuilder, "State invalid", http.StatusBadRequest)
		return
	}

	code := r.FormValue("code")
	if code == "" {
		utils.RespondError(w, &logMessageBuilder, "Code not found", http.StatusBadRequest)
		return
	}

	oauthConfig := getOauthConfig()
	token, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to exchange token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to get user info: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to read user info: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Successfully retrieved user info from Google")
	w.Header().Set("Content-Type", "application/json")
	w.Write(content)
}
