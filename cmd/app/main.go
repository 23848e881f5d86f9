package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/config"
	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/ports"
	cloudinarystorage "github.com/ankitkandwal-git/publication-Research-Journal/internal/infra/storage/cloudinary"
	memorystorage "github.com/ankitkandwal-git/publication-Research-Journal/internal/infra/storage/memory"
	router "github.com/ankitkandwal-git/publication-Research-Journal/internal/transport/http"
	"github.com/ankitkandwal-git/publication-Research-Journal/internal/transport/http/handlers"
	"github.com/ankitkandwal-git/publication-Research-Journal/internal/usecases"
	"github.com/ankitkandwal-git/publication-Research-Journal/pkg/graceful_shutdown"
	httpserver "github.com/ankitkandwal-git/publication-Research-Journal/pkg/http_server"
	"github.com/ankitkandwal-git/publication-Research-Journal/pkg/http_server/mw"
)

func Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	storage, err := newStorageBackend(cfg)
	if err != nil {
		slog.Error("initializing storage backend", "error", err)
		os.Exit(1)
	}

	certificates := usecases.NewCertificateUseCase(storage,
		usecases.WithStoreTimeout(cfg.StoreTimeout),
		usecases.WithListTimeout(cfg.ListTimeout))

	httpHandlers := handlers.NewHTTPHandlers(certificates)

	router := router.NewRouter(httpHandlers)

	// The read timeout has to cover a full 5 MiB body on a slow link.
	server := httpserver.NewHTTPServer(router,
		httpserver.WithAddress(cfg.Address),
		httpserver.WithTimeouts(60*time.Second, 30*time.Second),
		httpserver.WithMiddleware(mw.CORS, mw.RequestMetadata))

	gfl := graceful_shutdown.NewGracefulShutdown(ctx)

	gfl.Go(server.Start)
	gfl.MustClose(server.Stop)

	gfl.Wait()
}

// newStorageBackend selects the storage variant once, at process start.
// A partial credential set, or an explicit cloudinary override without the
// full triple, yields the fail-fast Unconfigured backend: that deployment
// intended durability and must not be silently downgraded.
func newStorageBackend(cfg config.Config) (ports.StorageBackend, error) {
	switch {
	case cfg.Backend == config.BackendMemory:
		slog.Info("using ephemeral in-memory storage backend")
		return memorystorage.NewCertificateBackend(), nil

	case cfg.Cloudinary.Complete():
		slog.Info("using Cloudinary storage backend", "folder", cfg.Cloudinary.Folder)
		return cloudinarystorage.NewCertificateBackend(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
		)

	case cfg.Backend == config.BackendCloudinary || cfg.Cloudinary.Partial():
		slog.Warn("Cloudinary credentials incomplete, storage requests will fail until they are set")
		return cloudinarystorage.Unconfigured{}, nil

	default:
		slog.Info("no storage credentials found, using ephemeral in-memory backend")
		return memorystorage.NewCertificateBackend(), nil
	}
}
