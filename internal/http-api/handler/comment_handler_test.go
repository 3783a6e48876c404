package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bloghub/internal/http-api/dto"
	"bloghub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentService mocks the CommentService interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Submit(in service.SubmitCommentInput) (*service.SubmitCommentResult, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmitCommentResult), args.Error(1)
}

func (m *MockCommentService) ListByArticle(articleSlug string) ([]dto.CommentResponse, error) {
	args := m.Called(articleSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

func setupCommentRouter(svc service.CommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	NewCommentHandler(svc).RegisterRoutes(r.Group("/api"), noop, noop)
	return r
}

func commentForm() url.Values {
	form := url.Values{}
	form.Set("content", "hello there")
	form.Set("name", "Alex")
	form.Set("email", "alex@example.com")
	return form
}

func TestSubmitComment_AJAXReturnsPayload(t *testing.T) {
	mockService := new(MockCommentService)
	router := setupCommentRouter(mockService)

	mockService.On("Submit", mock.MatchedBy(func(in service.SubmitCommentInput) bool {
		return in.ArticleSlug == "go-generics" && in.Name == "Alex" && in.UserID == nil
	})).Return(&service.SubmitCommentResult{
		Comment: &dto.CommentResponse{
			ID:             11,
			Author:         "Alex",
			Content:        "hello there",
			GetAbsoluteURL: "mailto:alex@example.com",
		},
		RedirectURL: "/articles/go-generics",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/articles/go-generics/comments",
		strings.NewReader(commentForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CommentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "Alex", resp.Author)
	assert.Equal(t, "mailto:alex@example.com", resp.GetAbsoluteURL)
	mockService.AssertExpectations(t)
}

func TestSubmitComment_FormPostRedirects(t *testing.T) {
	mockService := new(MockCommentService)
	router := setupCommentRouter(mockService)

	mockService.On("Submit", mock.Anything).Return(&service.SubmitCommentResult{
		Comment:     &dto.CommentResponse{ID: 11},
		RedirectURL: "/articles/go-generics",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/articles/go-generics/comments",
		strings.NewReader(commentForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/articles/go-generics", w.Header().Get("Location"))
}

func TestSubmitComment_ArticleNotFound(t *testing.T) {
	mockService := new(MockCommentService)
	router := setupCommentRouter(mockService)

	mockService.On("Submit", mock.Anything).Return(nil, service.ErrArticleNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/articles/missing/comments",
		strings.NewReader(commentForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitComment_ParentMismatchIsBadRequest(t *testing.T) {
	mockService := new(MockCommentService)
	router := setupCommentRouter(mockService)

	mockService.On("Submit", mock.Anything).Return(nil, service.ErrParentMismatch)

	form := commentForm()
	form.Set("parent", "5")
	req := httptest.NewRequest(http.MethodPost, "/api/articles/go-generics/comments",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitComment_MissingContent(t *testing.T) {
	mockService := new(MockCommentService)
	router := setupCommentRouter(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/articles/go-generics/comments",
		strings.NewReader("name=Alex"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Submit", mock.Anything)
}

func TestListComments_Success(t *testing.T) {
	mockService := new(MockCommentService)
	router := setupCommentRouter(mockService)

	mockService.On("ListByArticle", "go-generics").Return([]dto.CommentResponse{
		{ID: 1, Author: "Alex"},
		{ID: 2, Author: "Kim", IsChild: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/go-generics/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CommentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
