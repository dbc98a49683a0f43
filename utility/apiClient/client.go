package apiClient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	Config "market-adapter/config"
	"market-adapter/utility/logger"
)

// Client object for external API request
type Client struct {
	BaseURL    *url.URL
	UserAgent  string
	Config     Config.Data
	HttpClient *http.Client
	startTime  int64
}

func New(HttpClient *http.Client, config Config.Data, baseURL string) *Client {
	if HttpClient == nil {
		HttpClient = http.DefaultClient
	}
	c := &Client{HttpClient: HttpClient}
	c.Config = config
	c.BaseURL, _ = url.Parse(baseURL)

	return c
}

func (c *Client) NewRequest(method, path string, body interface{}) (*http.Request, error) {
	return c.NewRequestWithContext(context.Background(), method, path, body)
}

// NewRequestWithContext ... the context bounds the whole round trip
func (c *Client) NewRequestWithContext(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	rel := &url.URL{Path: path, RawQuery: ""}
	if parsed, err := url.Parse(path); err == nil {
		rel = parsed
	}
	u := c.BaseURL.ResolveReference(rel)
	var buf io.ReadWriter
	if body != nil {
		buf = new(bytes.Buffer)
		err := json.NewEncoder(buf).Encode(body)
		if err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequest(method, u.String(), buf)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	if c.Config.MarketDataApiKey != "" {
		req.Header.Set("apikey", c.Config.MarketDataApiKey)
	}
	return req, nil
}

func (c *Client) AddHeader(req *http.Request, headers map[string]string) *http.Request {
	for header, value := range headers {
		req.Header.Set(header, value)
	}
	return req
}

func (c *Client) Do(req *http.Request, v interface{}) (*http.Response, error) {
	c.startTime = time.Now().UnixNano()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		logger.Info("Response from %s : %+v", c.BaseURL, err)
		return nil, err
	}
	defer resp.Body.Close()

	resBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp, err
	}

	duration := (time.Now().UnixNano() - c.startTime) / 1000000
	logger.Debug("Response from %s : [%d] Time: %dms", req.URL, resp.StatusCode, duration)

	if resp.StatusCode != 200 && resp.StatusCode != 201 {
		return resp, errors.New(fmt.Sprintf("%s", string(resBody)))
	}

	err = json.Unmarshal(resBody, v)
	return resp, err
}
