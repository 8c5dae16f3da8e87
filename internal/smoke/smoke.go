package smoke

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Check is one request of the post-deployment checklist and the status
// value its JSON body must carry.
type Check struct {
	Name       string
	Path       string
	Query      map[string]string
	WantStatus string
}

// DefaultChecks are the checks run after every deployment.
var DefaultChecks = []Check{
	{Name: "health", Path: "/health", WantStatus: "healthy"},
	{Name: "ready", Path: "/ready", WantStatus: "ready"},
	{Name: "stocks", Path: "/getAllStocks", Query: map[string]string{"limit": "1"}, WantStatus: "success"},
}

type Result struct {
	Check   Check
	Code    int
	Status  string
	Latency time.Duration
	Err     error
	Passed  bool
}

type Report []Result

func (r Report) Passed() bool {
	for _, res := range r {
		if !res.Passed {
			return false
		}
	}
	return true
}

func (r Report) Write(w io.Writer) {
	for _, res := range r {
		verdict := "PASS"
		if !res.Passed {
			verdict = "FAIL"
		}
		line := fmt.Sprintf("%s %-8s %s -> %d status=%q (%dms)",
			verdict, res.Check.Name, res.Check.Path, res.Code, res.Status, res.Latency.Milliseconds())
		if res.Err != nil {
			line += " error: " + res.Err.Error()
		}
		fmt.Fprintln(w, line)
	}
}

type statusBody struct {
	Status string `json:"status"`
}

type Checker struct {
	client *resty.Client
}

func NewChecker(baseURL string, timeout time.Duration) *Checker {
	client := resty.New().
		SetTimeout(timeout).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	return &Checker{client: client}
}

// Run performs every check, continuing past failures.
func (c *Checker) Run(ctx context.Context, checks []Check) Report {
	report := make(Report, 0, len(checks))
	for _, check := range checks {
		report = append(report, c.run(ctx, check))
	}
	return report
}

func (c *Checker) run(ctx context.Context, check Check) Result {
	res := Result{Check: check}

	var body statusBody
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(check.Query).
		SetResult(&body).
		SetError(&body).
		Get(check.Path)
	if err != nil {
		res.Err = err
		return res
	}

	res.Code = resp.StatusCode()
	res.Latency = resp.Time()
	res.Status = body.Status

	switch {
	case resp.IsError():
		res.Err = fmt.Errorf("unexpected http status %d", res.Code)
	case body.Status != check.WantStatus:
		res.Err = fmt.Errorf("want status %q", check.WantStatus)
	default:
		res.Passed = true
	}
	return res
}
