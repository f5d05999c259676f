package pgsql

import (
	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto one pool.
func NewRepositoryProvider(db DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:  newPgxUserRepository(db),
		EventRepo: newPgxEventRepository(db),
		LikeRepo:  newPgxLikeRepository(db),
	}
}
