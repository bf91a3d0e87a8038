package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tweeter-backend/internal/domain"
	"github.com/heartmarshall/tweeter-backend/internal/service/auth"
	"github.com/heartmarshall/tweeter-backend/internal/service/content"
)

// allPhases defines the canonical execution order. Later phases build on
// the users and tweets produced by earlier ones.
var allPhases = []string{"users", "follows", "tweets", "replies", "likes"}

var (
	firstNames = []string{"Ada", "Alan", "Barbara", "Dennis", "Edsger", "Frances", "Grace", "Ken", "Linus", "Margaret", "Niklaus", "Radia"}
	lastNames  = []string{"Hopper", "Lovelace", "Liskov", "Ritchie", "Thompson", "Dijkstra", "Allen", "Wirth", "Hamilton", "Perlman", "Turing", "Torvalds"}
	phrases    = []string{
		"Shipping on a Friday again.",
		"Who else is reading the changelog today?",
		"Hot take: tabs are fine.",
		"Coffee count: three and rising.",
		"Just refactored a 400 line function into four.",
		"The build is green. Nobody touch anything.",
		"Learning something new every day.",
		"What are you working on this week?",
	}
	replyPhrases = []string{"Agreed!", "Not sure about that one.", "Same here.", "Tell me more.", "Ha, classic."}
)

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the demo seeding phases.
type Pipeline struct {
	log     *slog.Logger
	svc     Services
	cfg     Config
	rnd     *rand.Rand
	users   []uuid.UUID
	tweets  []uuid.UUID
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. Randomness is seeded from cfg.RandSeed
// so reruns pick the same follows and likes.
func NewPipeline(log *slog.Logger, svc Services, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		svc:     svc,
		cfg:     cfg,
		rnd:     rand.New(rand.NewPCG(cfg.RandSeed, cfg.RandSeed)),
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		toRun = nil
		for _, ph := range allPhases {
			if filter[ph] {
				toRun = append(toRun, ph)
			}
		}
		if len(toRun) == 0 {
			return fmt.Errorf("no known phase in %v", phases)
		}
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "follows":
			result = p.runFollows(ctx)
		case "tweets":
			result = p.runTweets(ctx)
		case "replies":
			result = p.runReplies(ctx)
		case "likes":
			result = p.runLikes(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed",
		slog.Int("phases_run", len(toRun)),
		slog.Int("users", len(p.users)),
		slog.Int("tweets", len(p.tweets)),
	)
	return nil
}

// runUsers signs up cfg.Users accounts. Accounts from an earlier run are
// looked up instead and counted as skipped.
func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	var result PhaseResult
	for i := range p.cfg.Users {
		email := fmt.Sprintf("user%03d@%s", i+1, p.cfg.EmailDomain)
		name := firstNames[i%len(firstNames)] + " " + lastNames[(i/len(firstNames))%len(lastNames)]

		id, existed, err := p.ensureUser(ctx, email, name)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("user %s: %w", email, err)}
		}
		if existed {
			result.Skipped++
		} else {
			result.Inserted++
		}
		p.users = append(p.users, id)
	}
	return result
}

// ensureUser signs up email, or looks it up when an earlier run created it.
func (p *Pipeline) ensureUser(ctx context.Context, email, name string) (id uuid.UUID, existed bool, err error) {
	res, err := p.svc.Accounts.Signup(ctx, auth.SignupInput{Email: email, Password: p.cfg.Password, FullName: name})
	if err == nil {
		return res.User.ID, false, nil
	}
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		return uuid.Nil, false, err
	}

	u, err := p.svc.Graph.FindByIdentity(ctx, email)
	if err != nil {
		return uuid.Nil, false, err
	}
	return u.ID, true, nil
}

// runFollows makes every user follow up to cfg.FollowsPerUser others.
func (p *Pipeline) runFollows(ctx context.Context) PhaseResult {
	if len(p.users) < 2 {
		return PhaseResult{Skipped: 1}
	}

	var result PhaseResult
	for _, caller := range p.users {
		for _, target := range p.pick(p.users, p.cfg.FollowsPerUser, caller) {
			followed, err := p.svc.Graph.ToggleFollow(ctx, caller, target)
			if err != nil {
				return PhaseResult{Err: fmt.Errorf("follow: %w", err)}
			}
			if followed.HasFollower(caller) {
				result.Inserted++
				continue
			}
			// The edge existed already; restore it.
			if _, err := p.svc.Graph.ToggleFollow(ctx, caller, target); err != nil {
				return PhaseResult{Err: fmt.Errorf("refollow: %w", err)}
			}
			result.Skipped++
		}
	}
	return result
}

// runTweets posts cfg.TweetsPerUser tweets per user concurrently.
func (p *Pipeline) runTweets(ctx context.Context) PhaseResult {
	if len(p.users) == 0 {
		return PhaseResult{Skipped: 1}
	}

	type job struct {
		author uuid.UUID
		text   string
	}
	var jobs []job
	for _, u := range p.users {
		for range p.cfg.TweetsPerUser {
			jobs = append(jobs, job{author: u, text: phrases[p.rnd.IntN(len(phrases))]})
		}
	}

	ids, err := runConcurrent(ctx, p.cfg.Concurrency, jobs, func(ctx context.Context, j job) (uuid.UUID, error) {
		t, err := p.svc.Posts.CreateTweet(ctx, j.author, content.CreateTweetInput{Content: j.text})
		if err != nil {
			return uuid.Nil, err
		}
		return t.ID, nil
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("tweet: %w", err)}
	}
	p.tweets = append(p.tweets, ids...)
	return PhaseResult{Inserted: len(ids)}
}

// runReplies adds cfg.RepliesPerTweet replies from random users to each tweet.
func (p *Pipeline) runReplies(ctx context.Context) PhaseResult {
	if len(p.users) == 0 || len(p.tweets) == 0 {
		return PhaseResult{Skipped: 1}
	}

	type job struct {
		author, parent uuid.UUID
		text           string
	}
	var jobs []job
	for _, t := range p.tweets {
		for range p.cfg.RepliesPerTweet {
			jobs = append(jobs, job{
				author: p.users[p.rnd.IntN(len(p.users))],
				parent: t,
				text:   replyPhrases[p.rnd.IntN(len(replyPhrases))],
			})
		}
	}

	ids, err := runConcurrent(ctx, p.cfg.Concurrency, jobs, func(ctx context.Context, j job) (uuid.UUID, error) {
		r, err := p.svc.Posts.CreateReply(ctx, j.author, content.CreateReplyInput{ParentID: j.parent, Content: j.text})
		if err != nil {
			return uuid.Nil, err
		}
		return r.ID, nil
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("reply: %w", err)}
	}
	return PhaseResult{Inserted: len(ids)}
}

// runLikes likes each (user, tweet) pair with probability cfg.LikeRatio.
func (p *Pipeline) runLikes(ctx context.Context) PhaseResult {
	if len(p.users) == 0 || len(p.tweets) == 0 {
		return PhaseResult{Skipped: 1}
	}

	type job struct{ user, tweet uuid.UUID }
	var jobs []job
	for _, u := range p.users {
		for _, t := range p.tweets {
			if p.rnd.Float64() < p.cfg.LikeRatio {
				jobs = append(jobs, job{user: u, tweet: t})
			}
		}
	}

	fresh, err := runConcurrent(ctx, p.cfg.Concurrency, jobs, func(ctx context.Context, j job) (bool, error) {
		res, err := p.svc.Likes.ToggleLike(ctx, j.tweet, j.user)
		if err != nil {
			return false, err
		}
		if res.Liked {
			return true, nil
		}
		// Already liked by an earlier run; put the like back.
		_, err = p.svc.Likes.ToggleLike(ctx, j.tweet, j.user)
		return false, err
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("like: %w", err)}
	}

	var result PhaseResult
	for _, ok := range fresh {
		if ok {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}
	return result
}

// pick returns up to n distinct ids from pool, never including exclude.
func (p *Pipeline) pick(pool []uuid.UUID, n int, exclude uuid.UUID) []uuid.UUID {
	candidates := make([]uuid.UUID, 0, len(pool))
	for _, id := range pool {
		if id != exclude {
			candidates = append(candidates, id)
		}
	}
	p.rnd.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	return candidates[:min(n, len(candidates))]
}

// runConcurrent applies fn to every job with at most limit in flight and
// returns the results in job order. The first error cancels the rest.
func runConcurrent[J, R any](ctx context.Context, limit int, jobs []J, fn func(context.Context, J) (R, error)) ([]R, error) {
	out := make([]R, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, j := range jobs {
		g.Go(func() error {
			r, err := fn(gctx, j)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
