package interfaces

import (
	"context"
	"shrijee_plots/internal/domain/entities"
)

//go:generate mockgen -source=plot_repository_interface.go -destination=mocks/mock_plot_repository.go -package=mock_interfaces

// IPlotRepository abstracts DynamoDB persistence for Plot.
//
// Lookups return a zero-value Plot (empty ID) when nothing matches;
// use cases translate that into ErrPlotNotFound. UpdateStatus only moves a
// plot that is still in status from and returns ErrConcurrentUpdate otherwise.

type IPlotRepository interface {
	Create(ctx context.Context, p entities.Plot) (entities.Plot, error)
	GetByID(ctx context.Context, id string) (entities.Plot, error)
	List(ctx context.Context) ([]entities.Plot, error)
	Update(ctx context.Context, p entities.Plot) (entities.Plot, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.PlotStatus) (entities.Plot, error)
	Delete(ctx context.Context, id string) error
}
