package exam

import (
	"context"
	"sync"

	"exam_client/internal/model"
	"exam_client/pkg/logger"
	"exam_client/pkg/monitoring"

	"go.uber.org/zap"
)

//go:generate mockgen -source=./controller.go -destination=./mocks/controller.mock.go -package=mocks

// QuestionSource 题库服务，每次调用返回一组随机抽取、顺序固定的题目
type QuestionSource interface {
	RandomQuestions(ctx context.Context) ([]model.Question, error)
}

// AuthContext 当前登录用户
type AuthContext interface {
	CurrentUser() (model.User, bool)
}

// Controller 持有唯一一场考试的状态。事件处理通过互斥锁串行执行，
// 抽题请求在锁外进行，请求失败时原状态保持不变
type Controller struct {
	source QuestionSource
	auth   AuthContext

	mu    sync.Mutex
	state State
	// generation 每次 Reset 加一，抽题期间发生过 Reset 的结果直接丢弃
	generation uint64
}

func NewController(source QuestionSource, auth AuthContext) *Controller {
	return &Controller{
		source: source,
		auth:   auth,
		state:  State{Phase: PhaseIdle, Answers: Answers{}},
	}
}

// Start 抽题并开始新考试，成功后旧考试的作答全部不可达
func (c *Controller) Start(ctx context.Context) (View, error) {
	user, ok := c.auth.CurrentUser()
	if !ok {
		return View{}, ErrNotAuthenticated
	}

	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	questions, err := c.source.RandomQuestions(ctx)
	if err != nil {
		logger.Log.Warn("start exam failed", zap.Int64("user_id", user.ID), zap.Error(err))
		return View{}, err
	}
	if len(questions) == 0 {
		return View{}, ErrNoQuestions
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		logger.Log.Info("discard questions fetched before reset", zap.Int64("user_id", user.ID))
		return View{}, ErrSessionReset
	}
	c.state = Begin(questions)
	monitoring.ExamSessionsStarted.Inc()
	logger.Log.Info("exam started", zap.Int64("user_id", user.ID), zap.Int("questions", len(questions)))
	return Render(c.state)
}

// View 当前状态的渲染结果
func (c *Controller) View() (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Render(c.state)
}

func (c *Controller) RenderAt(position int) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return RenderAt(c.state, position)
}

func (c *Controller) Select(position int, value string) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := Select(c.state, position, value)
	if err != nil {
		return View{}, err
	}
	c.state = next
	return RenderAt(c.state, position)
}

func (c *Controller) Advance(delta int) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := Advance(c.state, delta)
	if err != nil {
		return View{}, err
	}
	c.state = next
	return Render(c.state)
}

// Submit 交卷。confirmed 为 false 时不做任何修改
func (c *Controller) Submit(confirmed bool) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Phase == PhaseInProgress && !confirmed {
		return View{}, ErrNotConfirmed
	}
	next, err := Finish(c.state)
	if err != nil {
		return View{}, err
	}
	c.state = next
	monitoring.ExamSessionsSubmitted.Inc()
	monitoring.ExamScore.Observe(next.Result.Score)
	logger.Log.Info("exam submitted",
		zap.Int("correct", next.Result.CorrectCount),
		zap.Int("total", next.Result.Total),
		zap.Float64("score", next.Result.Score))
	return Render(c.state)
}

// Reset 丢弃当前考试，回到未开始状态
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.state = State{Phase: PhaseIdle, Answers: Answers{}}
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}
