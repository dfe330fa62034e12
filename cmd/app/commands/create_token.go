package commands

import (
	"context"
	"fmt"
	"log/slog"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	authService "github.com/allisson/mailadmin/internal/auth/service"
	authUseCase "github.com/allisson/mailadmin/internal/auth/usecase"
	userUseCase "github.com/allisson/mailadmin/internal/user/usecase"
)

// createTokenOutput is the result shape for the create-token command.
type createTokenOutput struct {
	Username string `json:"username"`
	Label    string `json:"label"`
	Token    string `json:"token"`
}

// RunCreateToken issues a bearer token for an account directly through the
// repositories. Like create-user, it bypasses the authenticated API so the
// first token of a fresh install can be minted from the shell.
//
// Requirements: Database must be migrated and the account must exist.
func RunCreateToken(
	ctx context.Context,
	userRepo userUseCase.UserRepository,
	tokenRepo authUseCase.TokenRepository,
	tokenService authService.TokenService,
	logger *slog.Logger,
	username string,
	label string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating token", slog.String("username", username), slog.String("label", label))

	user, err := userRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	value, err := tokenService.GenerateToken()
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	token := &authDomain.AuthToken{
		UserID: user.ID,
		Token:  value,
		Label:  label,
	}

	if err := tokenRepo.Create(ctx, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	output := createTokenOutput{
		Username: username,
		Label:    label,
		Token:    value,
	}

	if format == "json" {
		outputJSON(output, io.Writer)
	} else {
		outputKeyValues(io.Writer,
			[2]string{"Username", output.Username},
			[2]string{"Label", output.Label},
			[2]string{"Token", output.Token},
		)
	}

	logger.Info("token created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("label", label),
	)

	return nil
}
