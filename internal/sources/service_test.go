package sources_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/sources"
)

func TestService_Normalize(t *testing.T) {
	type testCase struct {
		name      string
		raw       string
		setupMock func(m *sources.MockRepository)
		want      string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Matched",
			raw:  "UBER *EATS PENDING",
			setupMock: func(m *sources.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), "UBER *EATS PENDING").Return("Uber Eats", nil)
			},
			want: "Uber Eats",
		},
		{
			name: "NoMatchKeepsRaw",
			raw:  "  Airtasker ",
			setupMock: func(m *sources.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), "Airtasker").Return("", nil)
			},
			want: "Airtasker",
		},
		{
			name: "BlankSkipsLookup",
			raw:  "   ",
			want: "",
		},
		{
			name: "RepoError",
			raw:  "DiDi",
			setupMock: func(m *sources.MockRepository) {
				m.EXPECT().FindMatch(gomock.Any(), "DiDi").Return("", errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := sources.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := sources.NewService(repo).Normalize(context.Background(), tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sources.NewMockRepository(ctrl)
	repo.EXPECT().CreateAlias(gomock.Any(), "menulog", "Menulog").Return(nil)

	svc := sources.NewService(repo)

	require.NoError(t, svc.Learn(context.Background(), " MENULOG ", "Menulog"))
	assert.ErrorIs(t, svc.Learn(context.Background(), "", "Menulog"), sources.ErrInvalidAlias)
	assert.ErrorIs(t, svc.Learn(context.Background(), "x", " "), sources.ErrInvalidAlias)
}
