package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/btcsuite/go-socks/socks"
	"github.com/corvusdb/corvus-client-go/corvusclient"
	"github.com/corvusdb/corvus-client-go/infrastructure/logger"
	"github.com/pkg/errors"
)

const defaultRequestTimeout = 30 * time.Second

// Client is a corvusclient.DatabaseClient that talks to a Corvus server
// over its JSON-over-HTTP batch protocol. It is safe for use by multiple
// goroutines, though interactive transactions additionally assume a
// single active transaction per client.
type Client struct {
	endpoint   *url.URL
	authToken  string
	httpClient *http.Client
}

// Options holds the optional connection parameters for
// ConnectWithOptions.
type Options struct {
	// AuthToken, if not empty, is sent as a bearer token with every
	// request.
	AuthToken string

	// RequestTimeout bounds every single HTTP request. Zero means the
	// default of 30 seconds.
	RequestTimeout time.Duration

	// Proxy, if not empty, is the address of a SOCKS5 proxy to dial the
	// server through. ProxyUser/ProxyPass optionally authenticate
	// against it.
	Proxy     string
	ProxyUser string
	ProxyPass string
}

// Connect creates a client for the Corvus server at the given endpoint
// URL with default options. Accepted schemes are http, https and corvus
// (an alias for https).
func Connect(endpoint string) (*Client, error) {
	return ConnectWithOptions(endpoint, &Options{})
}

// ConnectWithOptions creates a client for the Corvus server at the given
// endpoint URL. No connection is established up front; the server is
// only contacted once statements are executed.
func ConnectWithOptions(endpoint string, options *Options) (*Client, error) {
	parsedEndpoint, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing endpoint %s", endpoint)
	}
	switch parsedEndpoint.Scheme {
	case "http", "https":
	case "corvus":
		parsedEndpoint.Scheme = "https"
	default:
		return nil, errors.Errorf("unsupported URL scheme %s. Supported schemes "+
			"are http, https and corvus", parsedEndpoint.Scheme)
	}

	timeout := options.RequestTimeout
	if timeout == 0 {
		timeout = defaultRequestTimeout
	}

	transport := &http.Transport{}
	if options.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     options.Proxy,
			Username: options.ProxyUser,
			Password: options.ProxyPass,
		}
		transport.Dial = proxy.Dial
	}

	log.Infof("Using Corvus server %s", parsedEndpoint.Host)

	return &Client{
		endpoint:  parsedEndpoint,
		authToken: options.AuthToken,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// Address returns the address of the server this client talks to.
func (c *Client) Address() string {
	return c.endpoint.Host
}

// Close releases the client's idle connections. The client must not be
// used afterwards.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Execute executes one statement and returns its result set.
// This method is part of the DatabaseClient interface.
func (c *Client) Execute(ctx context.Context, statement corvusclient.Statement) (
	*corvusclient.ResultSet, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "Execute")
	defer onEnd()

	resultSets, err := c.postBatch(ctx, []corvusclient.Statement{statement})
	if err != nil {
		return nil, err
	}
	return resultSets[0], nil
}

// RawBatch executes an ordered batch of statements as one logical unit,
// discarding their result sets. The first statement-level error fails
// the whole call.
// This method is part of the DatabaseClient interface.
func (c *Client) RawBatch(ctx context.Context, statements []corvusclient.Statement) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "RawBatch")
	defer onEnd()

	_, err := c.postBatch(ctx, statements)
	return err
}

// postBatch POSTs the given statements to the server's batch endpoint
// and parses the per-statement results.
func (c *Client) postBatch(ctx context.Context, statements []corvusclient.Statement) (
	[]*corvusclient.ResultSet, error) {

	requestBody, err := json.Marshal(batchRequest{Statements: statements})
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling the statement batch")
	}
	log.Tracef("Posting batch of %d statements to %s", len(statements), c.endpoint)

	request, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(requestBody))
	if err != nil {
		return nil, errors.Wrap(err, "error building the batch request")
	}
	request.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		request.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "error posting a batch to %s", c.endpoint.Host)
	}
	defer response.Body.Close()

	responseBody, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading the server response")
	}
	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("server returned HTTP %d: %s",
			response.StatusCode, bytes.TrimSpace(responseBody))
	}

	return parseBatchResponse(responseBody, len(statements))
}

// ErrServer is an error reported by the server for a statement.
var ErrServer = errors.New("server error")

func convertServerError(serverError *wireError) error {
	return errors.Wrap(ErrServer, serverError.Message)
}
