package adapter

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/syno-backup/internal/config"
	"github.com/MKhiriev/syno-backup/internal/logger"
	"github.com/MKhiriev/syno-backup/internal/utils"
	"github.com/MKhiriev/syno-backup/models"
	"github.com/go-resty/resty/v2"
)

// DSM API names used by the backup run. The discovery call also asks for
// SYNO.FileStation.Info so the advertised set matches what the DSM admin
// UI reports for FileStation as a whole.
const (
	apiInfo   = "SYNO.API.Info"
	apiAuth   = "SYNO.API.Auth"
	apiList   = "SYNO.FileStation.List"
	apiUpload = "SYNO.FileStation.Upload"

	authVersion   = 3
	listVersion   = 2
	uploadVersion = 2
)

type fileStationAdapter struct {
	client *utils.HTTPClient

	// apis maps API name to its cgi path and supported version range,
	// as discovered by Connect. Nil until Connect succeeds.
	apis map[string]models.APIInfo

	logger *logger.Logger
}

// NewFileStationAdapter constructs the resty-backed implementation of
// [FileStation]. The request timeout and TLS verification behaviour come
// from adapterCfg; the target address is supplied later via Connect.
func NewFileStationAdapter(adapterCfg config.Adapter, logger *logger.Logger) FileStation {
	client := utils.NewHTTPClient()
	client.SetTimeout(adapterCfg.RequestTimeout)

	if adapterCfg.InsecureTLS {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &fileStationAdapter{client: client, logger: logger}
}

// Connect implements [FileStation]. It derives the web API base URL from
// host and port, queries SYNO.API.Info for the cgi paths and version
// ranges of the APIs the run needs, and verifies the NAS speaks the
// versions this client does.
func (f *fileStationAdapter) Connect(ctx context.Context, host string, port int) error {
	baseURL, err := webAPIBaseURL(host, port)
	if err != nil {
		return fmt.Errorf("invalid file station address: %w", err)
	}
	f.client.SetBaseURL(baseURL)

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api":     apiInfo,
			"version": "1",
			"method":  "query",
			"query":   strings.Join([]string{apiInfo, apiAuth, "SYNO.FileStation.Info", apiUpload, apiList}, ","),
		}).
		Get("/query.cgi")
	if err != nil {
		return fmt.Errorf("query api info: %w: %v", ErrConnection, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return fmt.Errorf("query api info: %w", err)
	}
	if !env.Success {
		return mapInfoError(env)
	}

	var apis map[string]models.APIInfo
	if err = json.Unmarshal(env.Data, &apis); err != nil {
		return fmt.Errorf("decode api info: %w", err)
	}
	f.apis = apis

	for name, version := range map[string]int{
		apiAuth:   authVersion,
		apiList:   listVersion,
		apiUpload: uploadVersion,
	} {
		if _, err = f.requireAPI(name, version); err != nil {
			return err
		}
	}

	f.logger.Debug().Str("base_url", baseURL).Int("apis", len(apis)).Msg("file station api discovered")
	return nil
}

// Login implements [FileStation]. The session is requested in cookie
// format, so the resty cookie jar carries it to all subsequent calls.
func (f *fileStationAdapter) Login(ctx context.Context, account, password string) error {
	api, err := f.requireAPI(apiAuth, authVersion)
	if err != nil {
		return err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api":     apiAuth,
			"version": strconv.Itoa(authVersion),
			"method":  "login",
			"account": account,
			"passwd":  password,
			"format":  "cookie",
		}).
		Get("/" + api.Path)
	if err != nil {
		return fmt.Errorf("login request: %w: %v", ErrConnection, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if !env.Success {
		return mapAuthError(env)
	}

	f.logger.Debug().Str("account", account).Msg("file station session opened")
	return nil
}

// Logout implements [FileStation].
func (f *fileStationAdapter) Logout(ctx context.Context) error {
	api, err := f.requireAPI(apiAuth, authVersion)
	if err != nil {
		return err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api":     apiAuth,
			"version": strconv.Itoa(authVersion),
			"method":  "logout",
			"format":  "cookie",
		}).
		Get("/" + api.Path)
	if err != nil {
		return fmt.Errorf("logout request: %w: %v", ErrConnection, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if !env.Success {
		return mapAuthError(env)
	}

	f.logger.Debug().Msg("file station session closed")
	return nil
}

// ListShares implements [FileStation].
func (f *fileStationAdapter) ListShares(ctx context.Context) ([]models.SharedFolder, error) {
	api, err := f.requireAPI(apiList, listVersion)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api":     apiList,
			"version": strconv.Itoa(listVersion),
			"method":  "list_share",
		}).
		Get("/" + api.Path)
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w: %v", ErrConnection, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w", err)
	}
	if !env.Success {
		return nil, mapFileStationError(env)
	}

	var list models.ShareList
	if err = json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("decode share list: %w", err)
	}

	return list.Shares, nil
}

// Upload implements [FileStation]. The archive is streamed as the last
// multipart part; DSM requires the api/method fields to precede the file
// content. Parent folders are created and an existing remote file of the
// same name is overwritten.
func (f *fileStationAdapter) Upload(ctx context.Context, sharePath, remoteName string, archive io.Reader) error {
	api, err := f.requireAPI(apiUpload, uploadVersion)
	if err != nil {
		return err
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"api":            apiUpload,
			"version":        strconv.Itoa(uploadVersion),
			"method":         "upload",
			"path":           sharePath,
			"create_parents": "true",
			"overwrite":      "true",
		}).
		SetMultipartField("file", remoteName, "application/octet-stream", archive).
		Post("/" + api.Path)
	if err != nil {
		return fmt.Errorf("upload request: %w: %v", ErrConnection, err)
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	if !env.Success {
		return mapUploadError(env)
	}

	f.logger.Debug().Str("path", sharePath).Str("remote_name", remoteName).Msg("file uploaded")
	return nil
}

// requireAPI returns the discovered descriptor for the named API and
// checks that version falls inside the NAS-advertised range.
func (f *fileStationAdapter) requireAPI(name string, version int) (models.APIInfo, error) {
	api, ok := f.apis[name]
	if !ok {
		return models.APIInfo{}, fmt.Errorf("%w: %s", ErrAPIUnavailable, name)
	}
	if version < api.MinVersion || version > api.MaxVersion {
		return models.APIInfo{}, fmt.Errorf("%w: %s version %d not in supported range %d-%d",
			ErrAPIUnavailable, name, version, api.MinVersion, api.MaxVersion)
	}
	return api, nil
}

func decodeEnvelope(resp *resty.Response) (models.SynoResponse, error) {
	if resp.StatusCode() >= 400 {
		return models.SynoResponse{}, fmt.Errorf("%w: http %d", ErrConnection, resp.StatusCode())
	}

	var env models.SynoResponse
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return models.SynoResponse{}, fmt.Errorf("decode file station response: %w", err)
	}
	return env, nil
}

// webAPIBaseURL builds the DSM web API root for host:port. A bare host
// defaults to https, which is what a DSM box exposes on its secure port;
// an explicit scheme in host is honoured so tests can point the adapter
// at plain-http servers.
func webAPIBaseURL(host string, port int) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", fmt.Errorf("empty host")
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("port %d out of range", port)
	}

	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	if u.Port() != "" {
		return "", fmt.Errorf("port belongs in the port field, not in host")
	}

	return fmt.Sprintf("%s://%s:%d/webapi", u.Scheme, u.Hostname(), port), nil
}
