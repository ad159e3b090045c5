package repository

//go:generate mockgen -destination=mock_querier.go -package=repository . Querier
