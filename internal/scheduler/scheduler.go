package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/goretsky-band/dodo-reports/infrastructure/redisstore"
	"github.com/goretsky-band/dodo-reports/infrastructure/repository"
	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/log"
)

// accountSession bundles one back-office account with its departments and
// resolved session cookies. Sync ticks operate account by account because
// cookies are scoped to the account.
type accountSession struct {
	accountName string
	departments []domain.Department
	cookies     map[string]string
}

// sessionResolver turns the provisioned department list into per-account
// sessions. Accounts whose cookies are missing from the credential store are
// skipped with a warning so one expired login does not stall the others.
type sessionResolver struct {
	departmentRepository repository.DepartmentRepository
	credentials          redisstore.CredentialStore
}

func (r *sessionResolver) resolve(ctx context.Context) ([]accountSession, error) {
	departments, err := r.departmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := domain.GroupDepartmentsByAccount(departments)
	sessions := make([]accountSession, 0, len(grouped))
	for accountName, accountDepartments := range grouped {
		cookies, err := r.credentials.Cookies(ctx, accountName)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warnf("skipping account %q", accountName)
			continue
		}
		sessions = append(sessions, accountSession{
			accountName: accountName,
			departments: accountDepartments,
			cookies:     cookies,
		})
	}

	return sessions, nil
}

// jobState is the per-job skip-if-running guard plus the timestamps surfaced
// on the status endpoint.
type jobState struct {
	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// tryStart claims the job slot. It returns false when a previous tick is
// still in flight, in which case the new tick must be dropped.
func (j *jobState) tryStart() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return false
	}
	j.running = true
	j.lastStartedAt = time.Now()
	return true
}

func (j *jobState) finish() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	j.lastCompletedAt = time.Now()
}

func (j *jobState) snapshot() (running bool, startedAt, completedAt time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.running, j.lastStartedAt, j.lastCompletedAt
}

// tickContext builds the bounded, correlation-tagged context every sync tick
// runs under.
func tickContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, _ := log.WithCorrelationID(context.Background())
	return context.WithTimeout(ctx, timeout)
}
