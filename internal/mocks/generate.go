package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/season --output domain/season --outpkg seasonmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/leader --output domain/leader --outpkg leadermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/adjustment --output domain/adjustment --outpkg adjustmentmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SeasonStatsProvider --dir ../usecase --output usecase --outpkg usecasemock --filename season_stats_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LeaderProvider --dir ../usecase --output usecase --outpkg usecasemock --filename leader_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerGoalsProvider --dir ../usecase --output usecase --outpkg usecasemock --filename player_goals_provider_mock.go
