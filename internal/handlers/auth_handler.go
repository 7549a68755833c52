package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marketplace-api/internal/config"
	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/mail"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	mailer *mail.Mailer
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, mailer *mail.Mailer) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, mailer: mailer}
}

// --------- Requests ---------

type SignupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`

	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsapp_number"`
	Location       string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleProvider {
		httperr.BadRequest(c, "invalid_role", "Tipo de conta inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// both email checks run before anything touches the database
	if validators.IsDisposableEmail(email) {
		httperr.BadRequest(c, "disposable_email_domain", "E-mails temporários não são aceitos.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Este e-mail já está cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar conta.")
		return
	}

	profile := models.Profile{
		ID:             uuid.New(),
		FullName:       req.FullName,
		Email:          email,
		PasswordHash:   string(hashed),
		Role:           role,
		Phone:          req.Phone,
		WhatsappNumber: req.WhatsappNumber,
		Location:       req.Location,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_create_profile", "Erro ao criar conta.")
		return
	}

	confirmToken, err := confirmationToken(h.config.JWTSecret, profile.ID)
	if err != nil {
		log.Println("confirmation token failed:", err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.mailer.SendWelcome(ctx, profile.Email, profile.FullName); err != nil {
			log.Println("welcome email failed:", err)
		}
		if confirmToken != "" {
			if err := h.mailer.SendConfirmation(ctx, profile.Email, profile.FullName, confirmToken); err != nil {
				log.Println("confirmation email failed:", err)
			}
		}
	}()

	token, err := h.generateToken(&profile)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao criar conta.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  profileJSON(&profile),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if !profile.EmailConfirmed {
		httperr.Forbidden(c, "email_not_confirmed", "Confirme seu e-mail antes de entrar.")
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao entrar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  profileJSON(&profile),
		"token": token,
	})
}

// ConfirmEmail flips the profile to confirmed. Confirming twice is
// harmless; the flag never goes back to false.
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		httperr.BadRequest(c, "missing_token", "Token obrigatório.")
		return
	}

	userID, err := parseConfirmationToken(h.config.JWTSecret, tokenString)
	if err != nil {
		httperr.BadRequest(c, "invalid_token", "Token inválido ou expirado.")
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Perfil não encontrado.")
		return
	}

	if !profile.EmailConfirmed {
		if err := h.db.Model(&profile).Update("email_confirmed", true).Error; err != nil {
			httperr.Internal(c, "failed_to_confirm_email", "Erro ao confirmar e-mail.")
			return
		}
		profile.EmailConfirmed = true
	}

	c.JSON(http.StatusOK, gin.H{"user": profileJSON(&profile)})
}

// --------- JWT ---------

const confirmationPurpose = "email_confirm"

// confirmationToken is a purpose-scoped JWT, so a session token can
// never confirm an e-mail and vice versa.
func confirmationToken(secret string, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub":     userID.String(),
		"purpose": confirmationPurpose,
		"exp":     time.Now().Add(48 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseConfirmationToken(secret, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	if purpose, _ := claims["purpose"].(string); purpose != confirmationPurpose {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}

	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}

func (h *AuthHandler) generateToken(p *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  p.ID.String(),
		"role": p.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func profileJSON(p *models.Profile) gin.H {
	return gin.H{
		"id":              p.ID,
		"full_name":       p.FullName,
		"email":           p.Email,
		"email_confirmed": p.EmailConfirmed,
		"role":            p.Role,
		"phone":           p.Phone,
		"whatsapp_number": p.WhatsappNumber,
		"location":        p.Location,
	}
}
