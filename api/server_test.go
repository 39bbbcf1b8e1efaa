package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylelab/fitting-lab/config"
	"github.com/stylelab/fitting-lab/fitting"
	"github.com/stylelab/fitting-lab/models"
	"github.com/stylelab/fitting-lab/state"
	"github.com/stylelab/fitting-lab/store"
)

type stubGenerator struct{}

func (stubGenerator) GenerateAdvice(ctx context.Context, prompt string) (string, error) {
	return "前卫而克制的搭配。", nil
}

func (stubGenerator) GenerateImage(ctx context.Context, prompt string, references [][]byte) ([]byte, error) {
	return []byte("png"), nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	config.UploadDir = t.TempDir()
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewServer(state.Load(context.Background(), fs), stubGenerator{})
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	handler(rr, req)

	var decoded map[string]interface{}
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	}
	return rr, decoded
}

func TestLabStateStartsAtFirstStep(t *testing.T) {
	s := newTestServer(t)

	rr, body := doJSON(t, s.LabStateHandler, http.MethodGet, "/lab/state", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, float64(0), body["stepIndex"])
	assert.Equal(t, float64(5), body["stepCount"])
	assert.Equal(t, "发型", body["step"])
	assert.Equal(t, "全部", body["facet"])
	assert.NotEmpty(t, body["options"])
}

func TestLabNavigateAndSelect(t *testing.T) {
	s := newTestServer(t)

	rr, body := doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
		map[string]string{"option_id": "h1"})
	require.Equal(t, http.StatusOK, rr.Code)
	session := body["session"].(map[string]interface{})
	assert.Equal(t, "h1", session["hairstyle"])

	rr, body = doJSON(t, s.NavigateHandler, http.MethodPost, "/lab/navigate",
		map[string]interface{}{"action": "next"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, body["done"])
	lab := body["lab"].(map[string]interface{})
	assert.Equal(t, float64(1), lab["stepIndex"])

	rr, _ = doJSON(t, s.NavigateHandler, http.MethodPost, "/lab/navigate",
		map[string]interface{}{"action": "jump", "index": 4})
	require.Equal(t, http.StatusOK, rr.Code)

	// "next" from the last step only reports completion.
	rr, body = doJSON(t, s.NavigateHandler, http.MethodPost, "/lab/navigate",
		map[string]interface{}{"action": "next"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, body["done"])

	rr, _ = doJSON(t, s.NavigateHandler, http.MethodPost, "/lab/navigate",
		map[string]interface{}{"action": "jump", "index": 9})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLabWardrobeSelectReturnsAndToggles(t *testing.T) {
	s := newTestServer(t)

	item, err := s.State.AddWardrobeItem(context.Background(),
		models.ExistingItem{Category: models.CategoryTop, Image: "a.jpg"})
	require.NoError(t, err)

	rr, _ := doJSON(t, s.NavigateHandler, http.MethodPost, "/lab/navigate",
		map[string]interface{}{"action": "jump", "index": 2})
	require.Equal(t, http.StatusOK, rr.Code)

	// The wardrobe step resolves ownership against live state; the handler
	// must come back instead of wedging on the session lock.
	var body map[string]interface{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		rr, body = doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
			map[string]string{"option_id": item.ID})
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("wardrobe select never returned")
	}
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	session := body["session"].(map[string]interface{})
	assert.Equal(t, []interface{}{item.ID}, session["oldClothes"])

	// Selecting the same item again deselects it.
	rr, body = doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
		map[string]string{"option_id": item.ID})
	require.Equal(t, http.StatusOK, rr.Code)
	session = body["session"].(map[string]interface{})
	assert.Nil(t, session["oldClothes"])

	// Items the user does not own are rejected.
	rr, _ = doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
		map[string]string{"option_id": "item-missing"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLabAccessorySelectToggles(t *testing.T) {
	s := newTestServer(t)

	rr, _ := doJSON(t, s.NavigateHandler, http.MethodPost, "/lab/navigate",
		map[string]interface{}{"action": "jump", "index": 3})
	require.Equal(t, http.StatusOK, rr.Code)

	rr, _ = doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
		map[string]string{"option_id": "ac1"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr, body := doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
		map[string]string{"option_id": "ac6"})
	require.Equal(t, http.StatusOK, rr.Code)

	session := body["session"].(map[string]interface{})
	assert.Equal(t, []interface{}{"ac1", "ac6"}, session["accessoryCategories"])

	rr, _ = doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
		map[string]string{"option_id": "ac99"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLabSelectRejectsUnknownOption(t *testing.T) {
	s := newTestServer(t)

	rr, _ := doJSON(t, s.SelectOptionHandler, http.MethodPost, "/lab/select",
		map[string]string{"option_id": "h999"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	s := newTestServer(t)

	rr, body := doJSON(t, s.CatalogHandler, http.MethodGet, "/catalog/hairstyles?filter=短发", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	for _, opt := range body["options"].([]interface{}) {
		assert.Equal(t, "短发", opt.(map[string]interface{})["subCategory"])
	}
	assert.Contains(t, body["facets"], "全部")

	rr, body = doJSON(t, s.CatalogHandler, http.MethodGet, "/catalog/preferences", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, body["styles"])
	assert.NotEmpty(t, body["budgets"])

	rr, _ = doJSON(t, s.CatalogHandler, http.MethodGet, "/catalog/nonsense", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, body = doJSON(t, s.LookbookHandler, http.MethodGet, "/lookbook", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, body["items"], 6)
}

func TestArchiveSaveAndList(t *testing.T) {
	s := newTestServer(t)

	rr, body := doJSON(t, s.ArchiveHandler, http.MethodPost, "/archive",
		map[string]string{"image": "https://cdn.example.com/result.jpg"})
	require.Equal(t, http.StatusOK, rr.Code)
	outfit := body["outfit"].(map[string]interface{})
	outfitID := outfit["id"].(string)
	assert.True(t, strings.HasPrefix(outfitID, "arc-"))

	rr, body = doJSON(t, s.ArchiveHandler, http.MethodGet, "/archive", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(1), body["total"])
	outfits := body["outfits"].([]interface{})
	require.Len(t, outfits, 1)

	rr, body = doJSON(t, s.ArchiveItemHandler, http.MethodGet, "/archive/item?id="+outfitID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, outfitID, body["outfit"].(map[string]interface{})["id"])

	rr, _ = doJSON(t, s.ArchiveItemHandler, http.MethodGet, "/archive/item?id=arc-missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = doJSON(t, s.ArchiveHandler, http.MethodPost, "/archive", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestWardrobeLifecycle(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartBody(t,
		map[string]string{"category": models.CategoryTop, "name": "白衬衫"},
		"image", "shirt.jpg", []byte("jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/wardrobe", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	s.WardrobeHandler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Item models.ExistingItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "白衬衫", resp.Item.Name)
	assert.NotEmpty(t, resp.Item.Image)

	rr, listBody := doJSON(t, s.WardrobeHandler, http.MethodGet, "/wardrobe", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, listBody["items"], 1)

	rr, _ = doJSON(t, s.WardrobeHandler, http.MethodDelete, "/wardrobe?id="+resp.Item.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, listBody = doJSON(t, s.WardrobeHandler, http.MethodGet, "/wardrobe", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, listBody["items"])
}

func TestWardrobeRejectsInvalidUploads(t *testing.T) {
	s := newTestServer(t)

	// Missing image file.
	body, contentType := multipartBody(t, map[string]string{"category": models.CategoryTop}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/wardrobe", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	s.WardrobeHandler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Unknown category.
	body, contentType = multipartBody(t, map[string]string{"category": "帽子"}, "image", "a.jpg", []byte("x"))
	req = httptest.NewRequest(http.MethodPost, "/wardrobe", body)
	req.Header.Set("Content-Type", contentType)
	rr = httptest.NewRecorder()
	s.WardrobeHandler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProfileCreateAndSelect(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"name":   "小美",
		"gender": "female",
		"height": "170",
		"style":  "街头潮流",
		"stores": "ZARA, Nike",
	}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/profiles", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	s.ProfilesHandler(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Profile models.CharacterProfile `json:"profile"`
		Session models.UserSelections   `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Profile.ID, "char-"))
	assert.Equal(t, "170", resp.Profile.BodyData.Height)
	assert.Equal(t, []string{"ZARA", "Nike"}, resp.Profile.Preferences.Stores)
	assert.Equal(t, resp.Profile.ID, resp.Session.ProfileID)

	rr, listBody := doJSON(t, s.ProfilesHandler, http.MethodGet, "/profiles", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, listBody["profiles"], 1)

	rr, selBody := doJSON(t, s.SelectProfileHandler, http.MethodPost, "/profiles/select",
		map[string]string{"profile_id": resp.Profile.ID})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, resp.Profile.ID, selBody["profile"].(map[string]interface{})["id"])

	rr, _ = doJSON(t, s.SelectProfileHandler, http.MethodPost, "/profiles/select",
		map[string]string{"profile_id": "char-missing"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFittingEndpoint(t *testing.T) {
	s := newTestServer(t)

	rr, body := doJSON(t, s.FittingHandler, http.MethodPost, "/fitting", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	assert.Equal(t, "前卫而克制的搭配。", body["advice"])
	assert.NotEmpty(t, body["image"])
	assert.Equal(t, false, body["fallback"])
	assert.Equal(t, "succeeded", body["phase"])
	assert.NotEmpty(t, body["recommendations"])
}

func TestRecommendationsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rr, body := doJSON(t, s.RecommendationsHandler, http.MethodGet, "/recommendations", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	recs := body["recommendations"].([]interface{})
	require.Len(t, recs, 3)
	first := recs[0].(map[string]interface{})
	assert.Equal(t, "rec-top", first["id"])
	comparison := first["comparison"].([]interface{})
	assert.Len(t, comparison, 3)
}

var _ fitting.Generator = stubGenerator{}
