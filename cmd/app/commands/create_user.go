package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	userDomain "github.com/allisson/mailadmin/internal/user/domain"
	userUseCase "github.com/allisson/mailadmin/internal/user/usecase"
)

// createUserOutput is the result shape for the create-user command.
type createUserOutput struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// RunCreateUser creates an administrative account directly through the
// repository. This deliberately bypasses the superuser check in the use case:
// the command exists to bootstrap the very first account on a fresh install,
// where no identity can exist yet.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userRepo userUseCase.UserRepository,
	logger *slog.Logger,
	username string,
	isSuperuser bool,
	format string,
	io IOTuple,
) error {
	logger.Info("creating user", slog.String("username", username))

	user := &userDomain.User{
		Username:    username,
		IsSuperuser: isSuperuser,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	output := createUserOutput{
		ID:          user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}

	if format == "json" {
		outputJSON(output, io.Writer)
	} else {
		outputKeyValues(io.Writer,
			[2]string{"ID", strconv.FormatInt(output.ID, 10)},
			[2]string{"Username", output.Username},
			[2]string{"Superuser", strconv.FormatBool(output.IsSuperuser)},
		)
	}

	logger.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("username", username),
		slog.Bool("is_superuser", isSuperuser),
	)

	return nil
}
