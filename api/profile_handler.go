package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/utils"
)

// ProfilesHandler dispatches the profile collection endpoint: list on GET,
// create-or-overwrite on POST.
func (s *Server) ProfilesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.ListProfilesHandler(w, r)
	case http.MethodPost:
		s.CreateProfileHandler(w, r)
	default:
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateProfileHandler saves (or wholesale-overwrites) a character profile
// from a multipart form: identity fields, body measurements, preferences and
// an optional face image. The saved profile immediately seeds a fresh
// selection session.
func (s *Server) CreateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Create Profile API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		utils.RespondError(w, &logMessageBuilder, "Name is required", http.StatusBadRequest)
		return
	}

	gender := r.FormValue("gender")
	if gender != "male" && gender != "female" {
		gender = models.DefaultGender
	}

	bodyData := models.BodyData{
		Height:   r.FormValue("height"),
		Weight:   r.FormValue("weight"),
		Chest:    r.FormValue("chest"),
		Waist:    r.FormValue("waist"),
		Hip:      r.FormValue("hip"),
		Shoulder: r.FormValue("shoulder"),
	}
	if bodyData.Height == "" {
		bodyData.Height = models.DefaultHeight
	}
	if bodyData.Weight == "" {
		bodyData.Weight = models.DefaultWeight
	}

	preferences := models.UserPreferences{
		Style:   r.FormValue("style"),
		Palette: r.FormValue("palette"),
		Budget:  r.FormValue("budget"),
	}
	if stores := r.FormValue("stores"); stores != "" {
		for _, store := range strings.Split(stores, ",") {
			if store = strings.TrimSpace(store); store != "" {
				preferences.Stores = append(preferences.Stores, store)
			}
		}
	}

	// The face image arrives either as an uploaded file or as an inline data
	// URL carried over from a previously saved profile.
	faceImage := r.FormValue("face_image")
	if files := r.MultipartForm.File["face"]; len(files) > 0 {
		ref, err := s.Images.SaveUpload(r.Context(), files[0])
		if err != nil {
			utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error saving face image: %v", err), http.StatusInternalServerError)
			return
		}
		faceImage = ref
	}

	profile := models.CharacterProfile{
		ID:          r.FormValue("id"), // empty for a new profile
		Name:        name,
		Gender:      gender,
		FaceImage:   faceImage,
		BodyData:    bodyData,
		Preferences: preferences,
	}

	saved, err := s.State.SaveProfile(r.Context(), profile)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Error saving profile: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Profile saved: %s", saved.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile saved successfully",
		"profile": saved,
		"session": s.State.Session(),
	})
}

// ListProfilesHandler returns the saved character profiles, newest first.
func (s *Server) ListProfilesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profiles := s.State.Profiles()
	if profiles == nil {
		profiles = []models.CharacterProfile{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// SelectProfileHandler seeds a fresh session from an existing profile.
func (s *Server) SelectProfileHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Select Profile API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ProfileID string `json:"profile_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProfileID == "" {
		utils.RespondError(w, &logMessageBuilder, "profile_id is required", http.StatusBadRequest)
		return
	}

	profile, err := s.State.SelectProfile(r.Context(), req.ProfileID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Profile not found", http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Profile selected: %s", profile.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
		"session": s.State.Session(),
	})
}
