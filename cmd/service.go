package main

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// ServiceContext contains common data used by all handlers
type ServiceContext struct {
	Version        string
	Alma           AlmaConfig
	JWTKey         string
	Rules          HoldingsRules
	HTTPClient     *http.Client
	FastHTTPClient *http.Client
	Translations   *i18n.Bundle
	LocationMaps   []LocationMap
	DB             *sql.DB
}

// RequestError contains http status code and message for a
// failed Alma request
type RequestError struct {
	StatusCode int
	Message    string
}

// intializeService will initialize the service context based on the config parameters
func intializeService(version string, cfg *ServiceConfig) (*ServiceContext, error) {
	ctx := ServiceContext{Version: version,
		Alma:   cfg.Alma,
		JWTKey: cfg.JWTKey,
		Rules:  cfg.Rules,
	}

	log.Printf("Create HTTP client for external service calls")
	defaultTransport := &http.Transport{
		Dial: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 600 * time.Second,
		}).Dial,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
	}
	ctx.HTTPClient = &http.Client{
		Transport: defaultTransport,
		Timeout:   10 * time.Second,
	}
	ctx.FastHTTPClient = &http.Client{
		Transport: defaultTransport,
		Timeout:   5 * time.Second,
	}

	bundle, err := loadTranslations()
	if err != nil {
		return nil, err
	}
	ctx.Translations = bundle

	ctx.initLocationMaps()

	if cfg.DB.Host != "" {
		if err := ctx.initHiddenPolicies(cfg.DB); err != nil {
			return nil, err
		}
	}

	return &ctx, nil
}

// ignoreFavicon is a dummy to handle browser favicon requests without warnings
func (svc *ServiceContext) ignoreFavicon(c *gin.Context) {
}

// GetVersion reports the version of the serivce
func (svc *ServiceContext) getVersion(c *gin.Context) {
	build := "unknown"
	// cos our CWD is the bin directory
	files, _ := filepath.Glob("../buildtag.*")
	if len(files) == 1 {
		build = strings.Replace(files[0], "../buildtag.", "", 1)
	}

	vMap := make(map[string]string)
	vMap["version"] = svc.Version
	vMap["build"] = build
	c.JSON(http.StatusOK, vMap)
}

// HealthCheck reports the health of the server
func (svc *ServiceContext) healthCheck(c *gin.Context) {
	log.Printf("Got healthcheck request")
	type hcResp struct {
		Healthy bool   `json:"healthy"`
		Message string `json:"message,omitempty"`
	}
	hcMap := make(map[string]hcResp)
	hcStatus := http.StatusOK

	_, almaErr := svc.AlmaGet("/conf/test", nil, svc.FastHTTPClient)
	if almaErr != nil {
		log.Printf("ERROR: Failed response from Alma PING: %s", almaErr.Message)
		hcMap["alma"] = hcResp{Healthy: false, Message: almaErr.Message}
		hcStatus = http.StatusInternalServerError
	} else {
		hcMap["alma"] = hcResp{Healthy: true}
	}

	if svc.DB != nil {
		if err := svc.DB.Ping(); err != nil {
			log.Printf("ERROR: Failed response from database PING: %s", err.Error())
			hcMap["database"] = hcResp{Healthy: false, Message: err.Error()}
			hcStatus = http.StatusInternalServerError
		} else {
			hcMap["database"] = hcResp{Healthy: true}
		}
	}

	c.JSON(hcStatus, hcMap)
}

// AlmaGet sends a GET request to the Alma API and returns the response
func (svc *ServiceContext) AlmaGet(path string, params url.Values, httpClient *http.Client) ([]byte, *RequestError) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", svc.Alma.APIKey)
	almaURL := fmt.Sprintf("%s%s?%s", svc.Alma.URL, path, params.Encode())

	logURL := sanitizeURL(almaURL)
	log.Printf("Alma GET request: %s, timeout  %.0f sec", logURL, httpClient.Timeout.Seconds())
	req, _ := http.NewRequest("GET", almaURL, nil)
	req.Header.Add("Accept", "application/xml")

	startTime := time.Now()
	rawResp, rawErr := httpClient.Do(req)
	resp, err := handleAPIResponse(logURL, rawResp, rawErr)
	elapsedNanoSec := time.Since(startTime)
	elapsedMS := int64(elapsedNanoSec / time.Millisecond)
	observeAlmaRequest(path, err, elapsedNanoSec)

	if err != nil {
		if shouldLogAsError(err.StatusCode) {
			log.Printf("ERROR: Failed response from Alma GET %s - %d:%s. Elapsed Time: %d (ms)",
				logURL, err.StatusCode, err.Message, elapsedMS)
		} else {
			log.Printf("INFO: Response from Alma GET %s - %d:%s. Elapsed Time: %d (ms)",
				logURL, err.StatusCode, err.Message, elapsedMS)
		}
	} else {
		log.Printf("Successful response from Alma GET %s. Elapsed Time: %d (ms)", logURL, elapsedMS)
	}
	return resp, err
}

func handleAPIResponse(logURL string, resp *http.Response, err error) ([]byte, *RequestError) {
	if err != nil {
		status := http.StatusBadRequest
		errMsg := err.Error()
		if strings.Contains(err.Error(), "Timeout") {
			status = http.StatusRequestTimeout
			errMsg = fmt.Sprintf("%s timed out", logURL)
		} else if strings.Contains(err.Error(), "connection refused") {
			status = http.StatusServiceUnavailable
			errMsg = fmt.Sprintf("%s refused connection", logURL)
		}
		return nil, &RequestError{StatusCode: status, Message: errMsg}
	} else if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(resp.Body)
		status := resp.StatusCode
		errMsg := string(bodyBytes)
		return nil, &RequestError{StatusCode: status, Message: errMsg}
	}

	defer resp.Body.Close()
	bodyBytes, _ := io.ReadAll(resp.Body)
	return bodyBytes, nil
}

// do we log this http response as an error or is it expected under normal circumstances
func shouldLogAsError(httpStatus int) bool {
	return httpStatus != http.StatusOK && httpStatus != http.StatusNotFound
}

// sanitize a url for logging by removing the API key
func sanitizeURL(url string) string {

	// URL contains the API key
	ix := strings.Index(url, "apikey=")
	if ix < 0 {
		return url
	}

	// replace the key, keep whatever follows
	end := strings.Index(url[ix:], "&")
	if end < 0 {
		return url[0:ix] + "apikey=SECRET"
	}
	return url[0:ix] + "apikey=SECRET" + url[ix+end:]
}

// newRequestID generates a short id used to tie together log lines for one request
func newRequestID() string {
	return fmt.Sprintf("%08x", rand.Uint32())
}
