package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kantorkita/presensi-backend-go/internal/domain/auth"
	"github.com/kantorkita/presensi-backend-go/internal/domain/employee"
	"github.com/kantorkita/presensi-backend-go/internal/pkg/jwt"
)

// ===== FAKES =====

type fakeDirectory struct {
	byID    map[string]employee.Employee
	byEmail map[string]employee.Employee
}

func newFakeDirectory(emps ...employee.Employee) *fakeDirectory {
	d := &fakeDirectory{
		byID:    make(map[string]employee.Employee),
		byEmail: make(map[string]employee.Employee),
	}
	for _, emp := range emps {
		d.byID[emp.ID] = emp
		d.byEmail[emp.Email] = emp
	}
	return d
}

func (d *fakeDirectory) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := d.byEmail[emp.Email]; ok {
		return employee.Employee{}, employee.ErrEmailExists
	}
	emp.ID = "emp-" + emp.Email
	d.byID[emp.ID] = emp
	d.byEmail[emp.Email] = emp
	return emp, nil
}

func (d *fakeDirectory) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := d.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (d *fakeDirectory) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, ok := d.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (d *fakeDirectory) GetByCardNumber(ctx context.Context, cardNumber int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrCardNotFound
}

func (d *fakeDirectory) GetIDsByNames(ctx context.Context, names []string) ([]string, error) {
	return nil, nil
}

func (d *fakeDirectory) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	emp, ok := d.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.PasswordHash = &passwordHash
	d.byID[id] = emp
	return nil
}

func (d *fakeDirectory) AssignCard(ctx context.Context, id string, cardNumber int64) error {
	return nil
}

type fakeAuthRepo struct {
	refreshTokens map[string]auth.RefreshToken
	resets        map[string]auth.PasswordReset
	revokedFor    []string
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		refreshTokens: make(map[string]auth.RefreshToken),
		resets:        make(map[string]auth.PasswordReset),
	}
}

func (r *fakeAuthRepo) StoreRefreshToken(ctx context.Context, token auth.RefreshToken) error {
	r.refreshTokens[token.Token] = token
	return nil
}

func (r *fakeAuthRepo) GetRefreshToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	rt, ok := r.refreshTokens[token]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return &rt, nil
}

func (r *fakeAuthRepo) RevokeRefreshTokens(ctx context.Context, employeeID string) error {
	r.revokedFor = append(r.revokedFor, employeeID)
	for key, rt := range r.refreshTokens {
		if rt.EmployeeID == employeeID {
			rt.Revoked = true
			r.refreshTokens[key] = rt
		}
	}
	return nil
}

func (r *fakeAuthRepo) CreatePasswordReset(ctx context.Context, reset auth.PasswordReset) error {
	r.resets[reset.Token] = reset
	return nil
}

func (r *fakeAuthRepo) GetPasswordReset(ctx context.Context, token string) (*auth.PasswordReset, error) {
	pr, ok := r.resets[token]
	if !ok {
		return nil, auth.ErrResetTokenInvalid
	}
	return &pr, nil
}

func (r *fakeAuthRepo) DeletePasswordReset(ctx context.Context, token string) error {
	delete(r.resets, token)
	return nil
}

// ===== HELPERS =====

func testJWTService() jwt.Service {
	return jwt.NewJWTService("test-secret", "1h", "168h")
}

func bobDirectory(t *testing.T) *fakeDirectory {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	return newFakeDirectory(employee.Employee{
		ID:           "emp-1",
		Name:         "Bob",
		Email:        "bob@example.com",
		PasswordHash: &hashStr,
		Position:     "Engineer",
		Division:     "Product",
	})
}

func newTestService(directory *fakeDirectory, authRepo *fakeAuthRepo) auth.AuthService {
	return NewAuthService(directory, authRepo, testJWTService(), nil, nil, "http://localhost:3000")
}

// ===== TESTS =====

func TestLogin_IssuesTokenPair(t *testing.T) {
	authRepo := newFakeAuthRepo()
	svc := newTestService(bobDirectory(t), authRepo)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	}, false)

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.UID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Contains(t, authRepo.refreshTokens, resp.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(bobDirectory(t), newFakeAuthRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	}, false)

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_AdminOnlyRejectsRegularAccount(t *testing.T) {
	svc := newTestService(bobDirectory(t), newFakeAuthRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	}, true)

	assert.ErrorIs(t, err, auth.ErrNotAdmin)
}

func TestRefreshToken_IssuesNewAccessToken(t *testing.T) {
	authRepo := newFakeAuthRepo()
	svc := newTestService(bobDirectory(t), authRepo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	}, false)
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.UID)
	assert.Equal(t, "bob@example.com", resp.Email)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshToken_UnknownTokenRejected(t *testing.T) {
	// Validly signed but never stored
	jwtSvc := testJWTService()
	stray, _, err := jwtSvc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	svc := NewAuthService(bobDirectory(t), newFakeAuthRepo(), jwtSvc, nil, nil, "http://localhost:3000")

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: stray})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_RevokedTokenRejected(t *testing.T) {
	authRepo := newFakeAuthRepo()
	svc := newTestService(bobDirectory(t), authRepo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	}, false)
	require.NoError(t, err)

	require.NoError(t, authRepo.RevokeRefreshTokens(context.Background(), "emp-1"))

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})

	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_StoreExpiryWins(t *testing.T) {
	authRepo := newFakeAuthRepo()
	jwtSvc := testJWTService()
	svc := NewAuthService(bobDirectory(t), authRepo, jwtSvc, nil, nil, "http://localhost:3000")

	token, _, err := jwtSvc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)
	authRepo.refreshTokens[token] = auth.RefreshToken{
		Token:      token,
		EmployeeID: "emp-1",
		ExpiresAt:  time.Now().Add(-time.Minute),
	}

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: token})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	authRepo := newFakeAuthRepo()
	jwtSvc := testJWTService()
	svc := NewAuthService(bobDirectory(t), authRepo, jwtSvc, nil, nil, "http://localhost:3000")

	access, _, err := jwtSvc.GenerateAccessToken("emp-1", "bob@example.com", false)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: access})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_EmptyTokenFailsValidation(t *testing.T) {
	svc := newTestService(bobDirectory(t), newFakeAuthRepo())

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidToken)
}