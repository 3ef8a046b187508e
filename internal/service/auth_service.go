package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phoneix12356/RenuHealthCare/internal/apperr"
	"github.com/phoneix12356/RenuHealthCare/internal/auth"
	"github.com/phoneix12356/RenuHealthCare/internal/letter"
	"github.com/phoneix12356/RenuHealthCare/internal/mailer"
	"github.com/phoneix12356/RenuHealthCare/internal/models"
)

type userRecords interface {
	Create(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiry time.Time) error
	ResetPassword(ctx context.Context, id primitive.ObjectID, token, passwordHash string) (bool, error)
}

type AuthService struct {
	users       userRecords
	letters     *LetterService
	mail        mailer.Mailer
	jwtSecret   string
	frontendURL string
}

func NewAuthService(users userRecords, letters *LetterService, mail mailer.Mailer, jwtSecret, frontendURL string) *AuthService {
	return &AuthService{
		users:       users,
		letters:     letters,
		mail:        mail,
		jwtSecret:   jwtSecret,
		frontendURL: frontendURL,
	}
}

type RegisterInput struct {
	Name           string    `json:"name" validate:"required,min=2,max=50"`
	Email          string    `json:"email" validate:"required,email"`
	Password       string    `json:"password" validate:"required,min=5"`
	PhoneNumber    string    `json:"phoneNumber" validate:"required"`
	College        string    `json:"college" validate:"required"`
	City           string    `json:"city" validate:"required"`
	State          string    `json:"state" validate:"required"`
	DepartmentName string    `json:"departmentName" validate:"required"`
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
}

type AuthResult struct {
	Token string
	User  models.UserResponse
}

// Register creates the intern account, then generates and stores their
// offer letter. Letter generation failure does not fail registration;
// the letter endpoint can regenerate later.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "look up user", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "Email already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "hash password", err)
	}

	user := &models.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   hash,
		PhoneNumber:    in.PhoneNumber,
		College:        in.College,
		City:           in.City,
		State:          in.State,
		DepartmentName: in.DepartmentName,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "create user", err)
	}

	if _, err := s.letters.GenerateOfferLetter(ctx, letterCandidate(user)); err != nil {
		log.Printf("Warning: offer letter generation for %s failed: %v", in.Email, err)
	}

	token, err := auth.GenerateToken(s.jwtSecret, id, in.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "sign token", err)
	}
	return &AuthResult{Token: token, User: user.ToResponse()}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "look up user", err)
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperr.New(apperr.KindUnauthorized, "Invalid credentials")
	}
	token, err := auth.GenerateToken(s.jwtSecret, user.ID.Hex(), user.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "sign token", err)
	}
	return &AuthResult{Token: token, User: user.ToResponse()}, nil
}

// User returns the full account record for internal use; handlers that
// respond with user data should prefer Me.
func (s *AuthService) User(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "look up user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "look up user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User")
	}
	resp := user.ToResponse()
	return &resp, nil
}

// SendPasswordReset emails a one-hour reset link.
func (s *AuthService) SendPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "look up user", err)
	}
	if user == nil {
		return apperr.NotFound("User")
	}

	token, err := auth.GenerateResetToken(s.jwtSecret, user.ID.Hex())
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "sign reset token", err)
	}
	expiry := time.Now().UTC().Add(time.Hour)
	if err := s.users.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		return apperr.Wrap(apperr.KindInternal, "store reset token", err)
	}

	link := fmt.Sprintf("%s/reset-password/%s/%s", s.frontendURL, user.ID.Hex(), token)
	msg := mailer.Message{
		To:      email,
		Subject: "Password Reset Request",
		HTML: fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>Click the link below to reset your password:</p>
<a href="%s">Reset Password</a>
<p>This link will expire in 1 hour.</p>`, link),
	}
	if err := s.mail.Send(msg); err != nil {
		return apperr.Wrap(apperr.KindInternal, "send reset email", err)
	}
	return nil
}

// ResetPassword completes the emailed reset flow.
func (s *AuthService) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	if _, err := auth.ValidateToken(s.jwtSecret, token); err != nil {
		return apperr.New(apperr.KindUnauthorized, "Invalid or expired token")
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperr.New(apperr.KindUnauthorized, "Invalid or expired reset link")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "hash password", err)
	}
	ok, err := s.users.ResetPassword(ctx, oid, token, hash)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "reset password", err)
	}
	if !ok {
		return apperr.New(apperr.KindUnauthorized, "Invalid or expired reset link")
	}
	return nil
}

// ChangePassword rotates the password of an authenticated user.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "look up user", err)
	}
	if user == nil {
		return apperr.NotFound("User")
	}
	if !auth.CheckPassword(current, user.PasswordHash) {
		return apperr.New(apperr.KindUnauthorized, "Current password is incorrect")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "hash password", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return apperr.Wrap(apperr.KindInternal, "update password", err)
	}
	return nil
}

func letterCandidate(u *models.User) letter.Candidate {
	return letter.Candidate{
		Name:           u.Name,
		Email:          u.Email,
		DepartmentName: u.DepartmentName,
		StartDate:      u.StartDate,
		EndDate:        u.EndDate,
	}
}
