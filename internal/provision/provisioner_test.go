package provision

import (
	"context"
	"errors"
	"testing"

	"church-admin/internal/database"
	"church-admin/internal/models"
	"church-admin/internal/repositories"
	"church-admin/internal/repositories/repository_mocks"
	"church-admin/internal/services"
	"church-admin/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProvisionerTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *database.DB
	churches    repositories.ChurchRepositoryInterface
	memberships repositories.MembershipRepositoryInterface
	auditRepo   repositories.AuditLogRepositoryInterface
	provisioner *Provisioner
}

func TestProvisionerSuite(t *testing.T) {
	suite.Run(t, new(ProvisionerTestSuite))
}

func (s *ProvisionerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.churches = repositories.NewChurchRepository(s.db.DB)
	s.memberships = repositories.NewMembershipRepository(s.db.DB)
	s.auditRepo = repositories.NewAuditLogRepository(s.db.DB)
	audit := services.NewAuditService(s.auditRepo, s.memberships)
	s.provisioner = NewProvisioner(s.churches, s.memberships, audit, nil)
}

func (s *ProvisionerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
	s.db.Close()
}

func (s *ProvisionerTestSuite) manifest() *Manifest {
	return &Manifest{Churches: []ChurchEntry{{
		Name: gofakeit.Company(),
		Slug: "central",
		Members: []MemberEntry{
			{UserID: "idp|pastor", Email: gofakeit.Email(), Name: gofakeit.Name(), Role: models.RoleAdmin},
			{UserID: "idp|tesorera", Email: gofakeit.Email(), Role: models.RoleTreasurer},
		},
	}}}
}

func (s *ProvisionerTestSuite) TestApply_CreatesChurchAndMembers() {
	res, err := s.provisioner.Apply(s.ctx, s.manifest())

	s.Require().NoError(err)
	s.Equal(&Result{ChurchesCreated: 1, MembersUpserted: 2}, res)

	church, err := s.churches.GetBySlug(s.ctx, "central")
	s.Require().NoError(err)
	s.True(church.Active)

	admin, err := s.memberships.Get(s.ctx, church.ID, "idp|pastor")
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, admin.Role)

	logs, total, err := s.auditRepo.List(s.ctx, models.AuditLogFilters{ChurchID: church.ID})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	for _, l := range logs {
		s.Equal(SystemActor.UserID, l.UserID)
	}
}

func (s *ProvisionerTestSuite) TestApply_Idempotent() {
	m := s.manifest()
	_, err := s.provisioner.Apply(s.ctx, m)
	s.Require().NoError(err)

	m.Churches[0].Members[1].Role = models.RoleViewer
	res, err := s.provisioner.Apply(s.ctx, m)

	s.Require().NoError(err)
	s.Equal(0, res.ChurchesCreated)
	s.Equal(1, res.ChurchesExisting)

	church, err := s.churches.GetBySlug(s.ctx, "central")
	s.Require().NoError(err)
	members, err := s.memberships.ListByChurch(s.ctx, church.ID)
	s.Require().NoError(err)
	s.Len(members, 2)

	treasurer, err := s.memberships.Get(s.ctx, church.ID, "idp|tesorera")
	s.Require().NoError(err)
	s.Equal(models.RoleViewer, treasurer.Role)
}

func (s *ProvisionerTestSuite) TestApply_RejectsInvalidManifest() {
	_, err := s.provisioner.Apply(s.ctx, &Manifest{})
	s.ErrorIs(err, ErrEmptyManifest)

	_, err = s.provisioner.Apply(s.ctx, nil)
	s.ErrorIs(err, ErrEmptyManifest)
}

func TestApply_AuditFailureDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	churches := repository_mocks.NewMockChurchRepositoryInterface(ctrl)
	memberships := repository_mocks.NewMockMembershipRepositoryInterface(ctrl)
	audit := service_mocks.NewMockAuditServiceInterface(ctrl)

	existing := &models.Church{ID: uuid.New(), Name: "Central", Slug: "central", Active: true}
	churches.EXPECT().GetBySlug(gomock.Any(), "central").Return(existing, nil)
	memberships.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))

	p := NewProvisioner(churches, memberships, audit, nil)
	res, err := p.Apply(context.Background(), &Manifest{Churches: []ChurchEntry{{
		Name:    "Central",
		Slug:    "central",
		Members: []MemberEntry{{UserID: "u1", Email: "u1@example.com", Role: models.RoleAdmin}},
	}}})

	require.NoError(t, err)
	assert.Equal(t, &Result{ChurchesExisting: 1, MembersUpserted: 1}, res)
}

func TestApply_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	churches := repository_mocks.NewMockChurchRepositoryInterface(ctrl)
	boom := errors.New("connection reset")
	churches.EXPECT().GetBySlug(gomock.Any(), "central").Return(nil, boom)

	p := NewProvisioner(churches, repository_mocks.NewMockMembershipRepositoryInterface(ctrl), service_mocks.NewMockAuditServiceInterface(ctrl), nil)
	_, err := p.Apply(context.Background(), &Manifest{Churches: []ChurchEntry{{
		Name:    "Central",
		Slug:    "central",
		Members: []MemberEntry{{UserID: "u1", Email: "u1@example.com", Role: models.RoleAdmin}},
	}}})

	assert.ErrorIs(t, err, boom)
}
