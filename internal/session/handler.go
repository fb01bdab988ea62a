package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
	app.Post("/api/v1/sign-up", h.signUp)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/profile", h.getProfile)
	app.Post("/api/v1/sign-out", h.signOut)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.store.SignIn(payload.Email, payload.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    h.store.Current(),
		"token":   h.store.Token(),
	})
}

func (h *Handler) signUp(c *fiber.Ctx) error {
	payload := new(signUpRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" || payload.DisplayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	err := h.store.SignUp(Profile{
		DisplayName: payload.DisplayName,
		Email:       payload.Email,
		Password:    payload.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already in use"})
		case errors.Is(err, ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password too weak"})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Account created, confirmation pending"})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	id := h.store.Current()
	if id.IsAnonymous() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(id)
}

// signOut clears the local session regardless of the remote outcome; a remote
// failure only changes the response message.
func (h *Handler) signOut(c *fiber.Ctx) error {
	if err := h.store.SignOut(); err != nil {
		return c.JSON(fiber.Map{"message": "Signed out locally; remote sign-out failed", "detail": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Signed out"})
}
