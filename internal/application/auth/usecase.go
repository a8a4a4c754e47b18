package auth

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/domain"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/internal/domain/repository"
	"github.com/jhoicas/mm-inventario/internal/xid"
	"github.com/jhoicas/mm-inventario/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// DefaultLatency espera simulada antes de resolver login y registro.
const DefaultLatency = 350 * time.Millisecond

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Options dependencias opcionales; los ceros usan los valores por defecto.
type Options struct {
	Latency    time.Duration       // 0 = DefaultLatency; negativo = sin espera
	Sleep      func(time.Duration) // por defecto time.Sleep (no cancelable)
	NewID      xid.Generator
	Now        func() time.Time
	BcryptCost int
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y sesión actual.
// La sesión vive en el snapshot (auth.sessionUserId); el token JWT es para el cliente HTTP.
type AuthUseCase struct {
	tx     repository.TxRunner
	jwtCfg JWTConfig
	opts   Options
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(tx repository.TxRunner, jwtCfg JWTConfig, opts Options) *AuthUseCase {
	if opts.Latency == 0 {
		opts.Latency = DefaultLatency
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.NewID == nil {
		opts.NewID = xid.New
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{tx: tx, jwtCfg: jwtCfg, opts: opts}
}

// RegisterUser crea un usuario con rol USER e inicia su sesión.
// Devuelve ErrEmailAlreadyExists si el email ya existe (sin distinguir mayúsculas).
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	uc.wait()

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	switch {
	case name == "":
		return nil, domain.Required("name")
	case email == "":
		return nil, domain.Required("email")
	case in.Password == "":
		return nil, domain.Required("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.opts.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uc.opts.NewID(xid.PrefixUser),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		CreatedAt:    uc.opts.Now().UTC(),
	}
	err = uc.tx.Run(ctx, "auth.register", func(r repository.Repos) error {
		existing, err := r.Users.GetByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := r.Users.Create(user); err != nil {
			return err
		}
		r.Session.Set(&user.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.loginResponse(user)
}

// Login verifica email/password, fija la sesión y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	uc.wait()

	var user *entity.User
	err := uc.tx.Run(ctx, "auth.login", func(r repository.Repos) error {
		u, err := r.Users.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
			return domain.ErrInvalidCredentials
		}
		r.Session.Set(&u.ID)
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.loginResponse(user)
}

// Logout cierra la sesión. Sin sesión activa no hace nada.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.tx.Run(ctx, "auth.logout", func(r repository.Repos) error {
		if r.Session.Current() != nil {
			r.Session.Set(nil)
		}
		return nil
	})
}

// Me devuelve el usuario de la sesión, o User nil si no hay sesión o el usuario ya no existe.
func (uc *AuthUseCase) Me(ctx context.Context) (*dto.MeResponse, error) {
	out := &dto.MeResponse{}
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		id := r.Session.Current()
		if id == nil {
			return nil
		}
		u, err := r.Users.GetByID(*id)
		if err != nil {
			return err
		}
		out.User = toUserResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UserByID devuelve el usuario o domain.ErrUserNotFound (middleware HTTP).
func (uc *AuthUseCase) UserByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.tx.View(ctx, func(r repository.Repos) error {
		u, err := r.Users.GetByID(id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUserNotFound
		}
		out = toUserResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *AuthUseCase) wait() {
	if uc.opts.Latency > 0 {
		uc.opts.Sleep(uc.opts.Latency)
	}
}

func (uc *AuthUseCase) loginResponse(u *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(u),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
