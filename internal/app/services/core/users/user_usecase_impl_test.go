package users

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"spectrumconnect-service/internal/app/models"
	"spectrumconnect-service/internal/pkg/dto/requests"
	"spectrumconnect-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserBackendClient struct {
	mock.Mock
}

func (m *MockUserBackendClient) Login(ctx context.Context, request *requests.Login) (*models.TokenData, error) {
	args := m.Called(ctx, request)
	token, _ := args.Get(0).(*models.TokenData)
	return token, args.Error(1)
}

func (m *MockUserBackendClient) Signup(ctx context.Context, request *requests.Signup) (*models.UserProfile, error) {
	args := m.Called(ctx, request)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *MockUserBackendClient) FindMe(ctx context.Context) (*models.UserProfile, error) {
	args := m.Called(ctx)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *MockUserBackendClient) UploadProfileImage(ctx context.Context, fileName string, file io.Reader) (*responses.ProfileImage, error) {
	content, _ := io.ReadAll(file)
	args := m.Called(ctx, fileName, string(content))
	image, _ := args.Get(0).(*responses.ProfileImage)
	return image, args.Error(1)
}

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func upload(name string, content []byte) *requests.UploadProfileImage {
	return &requests.UploadProfileImage{
		File:       memoryFile{bytes.NewReader(content)},
		FileHeader: &multipart.FileHeader{Filename: name, Size: int64(len(content))},
	}
}

var pngContent = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{1}, 600)...)

func TestUserUsecase_UploadProfileImage(t *testing.T) {
	ctx := context.Background()

	t.Run("valid png is forwarded whole", func(t *testing.T) {
		client := new(MockUserBackendClient)
		client.On("UploadProfileImage", ctx, "avatar.png", string(pngContent)).
			Return(&responses.ProfileImage{ImageURL: "https://cdn.example.com/avatar.png"}, nil)
		uc := NewUserUsecase(client, 2, zap.NewNop())

		result, err := uc.UploadProfileImage(ctx, upload("avatar.png", pngContent))
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/avatar.png", result.ImageURL)
		client.AssertExpectations(t)
	})

	t.Run("disguised file is rejected", func(t *testing.T) {
		client := new(MockUserBackendClient)
		uc := NewUserUsecase(client, 2, zap.NewNop())

		_, err := uc.UploadProfileImage(ctx, upload("avatar.png", []byte("<script>alert(1)</script>")))
		assert.Error(t, err)
		assert.Empty(t, client.Calls)
	})

	t.Run("wrong extension is rejected", func(t *testing.T) {
		client := new(MockUserBackendClient)
		uc := NewUserUsecase(client, 2, zap.NewNop())

		_, err := uc.UploadProfileImage(ctx, upload("avatar.bmp", pngContent))
		assert.Error(t, err)
		assert.Empty(t, client.Calls)
	})
}
