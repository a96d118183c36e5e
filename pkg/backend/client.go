package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/bitsacm/pollz-client/pkg/communication"
	"github.com/bitsacm/pollz-client/pkg/session"
)

// Client talks to the POLLZ backend. All durable state (votes, ratings,
// comments, payment orders) lives there: this client only shuttles
// json payloads back and forth with the session's bearer token.
type Client interface {
	GetProfile(ctx context.Context) (communication.ProfileDtoResponse, error)
	Logout(ctx context.Context) error

	ListPositions(ctx context.Context) ([]communication.PositionDtoResponse, error)
	ListCandidates(ctx context.Context, position string) ([]communication.CandidateDtoResponse, error)
	CastVote(ctx context.Context, vote communication.VoteDtoRequest) error
	ListMyVotes(ctx context.Context) ([]communication.VoteDtoResponse, error)

	ListHuels(ctx context.Context, department string) ([]communication.HuelDtoResponse, error)
	RateHuel(ctx context.Context, rating communication.HuelRatingDtoRequest) error
	VoteHuel(ctx context.Context, vote communication.HuelVoteDtoRequest) error
	CommentHuel(ctx context.Context, comment communication.HuelCommentDtoRequest) error

	ListDepartmentClubs(ctx context.Context, category string) ([]communication.DepartmentClubDtoResponse, error)
	VoteDepartmentClub(ctx context.Context, vote communication.DepartmentClubVoteDtoRequest) error
	CommentDepartmentClub(ctx context.Context, comment communication.DepartmentClubCommentDtoRequest) error

	ListSuperChats(ctx context.Context) ([]communication.SuperChatHighlightDtoResponse, error)
	CreateSuperChatOrder(ctx context.Context, order communication.SuperChatOrderDtoRequest) (communication.SuperChatOrderDtoResponse, error)

	GetProjectInfo(ctx context.Context) (communication.ProjectInfoDtoResponse, error)
	ListContributors(ctx context.Context) (communication.ContributorsDtoResponse, error)

	GetStats(ctx context.Context) (communication.StatsDtoResponse, error)
	GetDashboard(ctx context.Context) (communication.DashboardDtoResponse, error)
}

// OnUnauthorized is called when the backend rejects the bearer token.
// The token is purged before the callback runs.
type OnUnauthorized func()

type Config struct {
	// The base url of the backend api, e.g. http://localhost:6969/api.
	BaseUrl string

	RequestTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseUrl:        "http://localhost:6969/api",
		RequestTimeout: 10 * time.Second,
	}
}

type Props struct {
	Config         Config
	Tokens         session.TokenStore
	OnUnauthorized OnUnauthorized
	Log            logger.Logger
}

type clientImpl struct {
	baseUrl        string
	client         *http.Client
	tokens         session.TokenStore
	onUnauthorized OnUnauthorized
	log            logger.Logger
}

func NewClient(props Props) Client {
	return &clientImpl{
		baseUrl: props.Config.BaseUrl,
		client: &http.Client{
			Timeout: props.Config.RequestTimeout,
		},
		tokens:         props.Tokens,
		onUnauthorized: props.OnUnauthorized,
		log:            props.Log,
	}
}

func (c *clientImpl) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseUrl + path
	if len(query) > 0 {
		target = fmt.Sprintf("%s?%s", target, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.WrapCode(err, ErrRequestFailed)
	}

	return c.do(req, out)
}

func (c *clientImpl) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return errors.WrapCode(err, ErrRequestFailed)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseUrl+path, bytes.NewReader(data),
	)
	if err != nil {
		return errors.WrapCode(err, ErrRequestFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *clientImpl) do(req *http.Request, out interface{}) error {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.WrapCode(err, ErrRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return errors.NewCode(ErrUnauthorized)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warnf(
			"Backend returned %d for %s %s", resp.StatusCode, req.Method, req.URL.Path,
		)
		return errors.NewCode(ErrUnexpectedStatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapCode(err, ErrResponseDecoding)
	}

	return nil
}

func (c *clientImpl) handleUnauthorized() {
	c.tokens.Purge()
	c.log.Infof("Backend rejected the access token, purging session")

	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
