package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"synapsex-be/internal/dto"
	"synapsex-be/internal/pkg/apperror"
	"synapsex-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStoryService struct {
	mock.Mock
}

func (m *MockStoryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStoryRequest) (*dto.StoryResponse, error) {
	args := m.Called(ctx, userId, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.StoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryService) ListActive(ctx context.Context) ([]*dto.StoryResponse, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*dto.StoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryService) View(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.ViewStoryResponse, error) {
	args := m.Called(ctx, userId, storyId)
	if v := args.Get(0); v != nil {
		return v.(*dto.ViewStoryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryService) Reply(ctx context.Context, userId uuid.UUID, storyId uuid.UUID, req *dto.ReplyStoryRequest) (*dto.StoryMessageResponse, error) {
	args := m.Called(ctx, userId, storyId, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.StoryMessageResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoryService) Delete(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) error {
	return m.Called(ctx, userId, storyId).Error(0)
}

func (m *MockStoryService) Details(ctx context.Context, userId uuid.UUID, storyId uuid.UUID) (*dto.StoryDetailsResponse, error) {
	args := m.Called(ctx, userId, storyId)
	if v := args.Get(0); v != nil {
		return v.(*dto.StoryDetailsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// stubAuth injects a fixed caller identity the way the JWT middleware does.
func stubAuth(userId uuid.UUID) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}

func newTestApp(svc *MockStoryService, userId uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil))
	NewStoryController(svc).RegisterRoutes(app.Group("/api"), stubAuth(userId))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	if len(raw) > 0 {
		assert.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestStoryController_Create(t *testing.T) {
	userId := uuid.New()

	t.Run("Created", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		storyId := uuid.New()
		svc.On("Create", mock.Anything, userId, mock.MatchedBy(func(r *dto.CreateStoryRequest) bool {
			return r.MediaUrl == "https://cdn.example.com/a.jpg" && r.Type == "VIDEO"
		})).Return(&dto.StoryResponse{
			Id:        storyId,
			UserId:    userId,
			MediaUrl:  "https://cdn.example.com/a.jpg",
			Type:      "VIDEO",
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}, nil).Once()

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories", fiber.Map{
			"mediaUrl": "https://cdn.example.com/a.jpg",
			"type":     "VIDEO",
		})

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, storyId.String(), data["id"])
		assert.Equal(t, "VIDEO", data["type"])
		svc.AssertExpectations(t)
	})

	t.Run("Missing media url is 400", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories", fiber.Map{"type": "IMAGE"})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["error"])
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store failure is a generic 500", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("Create", mock.Anything, userId, mock.Anything).
			Return(nil, apperror.NewPersistence("Failed to broadcast story", errors.New("connection refused"))).Once()

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories", fiber.Map{"mediaUrl": "x"})

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Internal server error", body["error"])
	})
}

func TestStoryController_List(t *testing.T) {
	userId := uuid.New()
	svc := new(MockStoryService)
	app := newTestApp(svc, userId)

	svc.On("ListActive", mock.Anything).Return([]*dto.StoryResponse{
		{Id: uuid.New(), MediaUrl: "a.jpg", Type: "IMAGE"},
		{Id: uuid.New(), MediaUrl: "b.mp4", Type: "VIDEO"},
	}, nil).Once()

	resp, body := doRequest(t, app, fiber.MethodGet, "/api/social/stories", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"].([]interface{}), 2)
}

func TestStoryController_View(t *testing.T) {
	userId := uuid.New()
	storyId := uuid.New()

	t.Run("Recorded", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("View", mock.Anything, userId, storyId).Return(&dto.ViewStoryResponse{}, nil).Once()

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories/"+storyId.String()+"/view", nil)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		_, hasIgnored := body["ignored"]
		assert.False(t, hasIgnored)
	})

	t.Run("Self view reports ignored", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("View", mock.Anything, userId, storyId).Return(&dto.ViewStoryResponse{Ignored: true}, nil).Once()

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories/"+storyId.String()+"/view", nil)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["ignored"])
	})

	t.Run("Malformed id is 404", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories/not-a-uuid/view", nil)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Story not found", body["error"])
		svc.AssertNotCalled(t, "View", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown story is 404", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("View", mock.Anything, userId, storyId).
			Return(nil, apperror.NewNotFound("Story not found")).Once()

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories/"+storyId.String()+"/view", nil)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Story not found", body["error"])
	})
}

func TestStoryController_Reply(t *testing.T) {
	userId := uuid.New()
	storyId := uuid.New()

	t.Run("Created", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("Reply", mock.Anything, userId, storyId, mock.MatchedBy(func(r *dto.ReplyStoryRequest) bool {
			return r.Content == "nice"
		})).Return(&dto.StoryMessageResponse{Id: uuid.New(), StoryId: storyId, Content: "nice"}, nil).Once()

		resp, body := doRequest(t, app, fiber.MethodPost, "/api/social/stories/"+storyId.String()+"/reply", fiber.Map{"content": "nice"})

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "nice", data["content"])
	})

	t.Run("Missing content is 400", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		resp, _ := doRequest(t, app, fiber.MethodPost, "/api/social/stories/"+storyId.String()+"/reply", fiber.Map{})

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStoryController_Delete(t *testing.T) {
	userId := uuid.New()
	storyId := uuid.New()

	t.Run("Terminated", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("Delete", mock.Anything, userId, storyId).Return(nil).Once()

		resp, body := doRequest(t, app, fiber.MethodDelete, "/api/social/stories/"+storyId.String(), nil)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Story terminated", body["message"])
	})

	t.Run("Non-owner is 403", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("Delete", mock.Anything, userId, storyId).
			Return(apperror.NewAuthorization("Unauthorized")).Once()

		resp, body := doRequest(t, app, fiber.MethodDelete, "/api/social/stories/"+storyId.String(), nil)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Unauthorized", body["error"])
	})
}

func TestStoryController_Details(t *testing.T) {
	userId := uuid.New()
	storyId := uuid.New()

	t.Run("Owner gets viewers and messages", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("Details", mock.Anything, userId, storyId).Return(&dto.StoryDetailsResponse{
			Viewers: []*dto.StoryViewerResponse{
				{StoryId: storyId, UserId: uuid.New(), ViewedAt: time.Now()},
			},
			Messages: []*dto.StoryMessageResponse{},
		}, nil).Once()

		resp, body := doRequest(t, app, fiber.MethodGet, "/api/social/stories/"+storyId.String()+"/details", nil)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["viewers"].([]interface{}), 1)
		assert.Empty(t, data["messages"])
	})

	t.Run("Non-owner is 403", func(t *testing.T) {
		svc := new(MockStoryService)
		app := newTestApp(svc, userId)

		svc.On("Details", mock.Anything, userId, storyId).
			Return(nil, apperror.NewAuthorization("Unauthorized")).Once()

		resp, body := doRequest(t, app, fiber.MethodGet, "/api/social/stories/"+storyId.String()+"/details", nil)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Unauthorized", body["error"])
	})
}
