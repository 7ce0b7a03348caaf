package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

// srdClient reads the SRD endpoints the dnd5e-api library does not wrap
// (subraces, subclasses, traits)
type srdClient struct {
	httpClient *http.Client
	baseURL    string
}

type srdReference struct {
	Index string `json:"index"`
	Name  string `json:"name"`
}

type srdList struct {
	Count   int            `json:"count"`
	Results []srdReference `json:"results"`
}

type srdSubrace struct {
	Index                 string         `json:"index"`
	Name                  string         `json:"name"`
	RacialTraits          []srdReference `json:"racial_traits"`
	StartingProficiencies []srdReference `json:"starting_proficiencies"`
}

type srdSubclassSpell struct {
	Spell srdReference `json:"spell"`
}

type srdSubclass struct {
	Index  string             `json:"index"`
	Name   string             `json:"name"`
	Class  srdReference       `json:"class"`
	Desc   []string           `json:"desc"`
	Spells []srdSubclassSpell `json:"spells"`
}

type srdSubclassLevel struct {
	Level    int            `json:"level"`
	Features []srdReference `json:"features"`
}

type srdTrait struct {
	Index         string         `json:"index"`
	Name          string         `json:"name"`
	Desc          []string       `json:"desc"`
	Proficiencies []srdReference `json:"proficiencies"`
}

func newSRDClient(httpClient *http.Client, baseURL string) *srdClient {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &srdClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// getJSON decodes the resource at path into dst. It returns false with a nil
// error when the resource does not exist.
func (c *srdClient) getJSON(ctx context.Context, path string, dst any) (bool, error) {
	url := c.baseURL + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeInternal, "failed to build request").
			WithMeta("url", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeUnavailable, "reference data request failed").
			WithMeta("url", url)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.DebugContext(ctx, "Failed to close response body", "url", url, "error", cerr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, errors.Unavailablef("reference data returned status %d", resp.StatusCode).
			WithMeta("url", url)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return false, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode reference data").
			WithMeta("url", url)
	}

	return true, nil
}

func (c *srdClient) getSubrace(ctx context.Context, id string) (*srdSubrace, bool, error) {
	var out srdSubrace
	found, err := c.getJSON(ctx, "subraces/"+id, &out)
	if err != nil || !found {
		return nil, found, err
	}
	return &out, true, nil
}

func (c *srdClient) getSubclass(ctx context.Context, id string) (*srdSubclass, bool, error) {
	var out srdSubclass
	found, err := c.getJSON(ctx, "subclasses/"+id, &out)
	if err != nil || !found {
		return nil, found, err
	}
	return &out, true, nil
}

func (c *srdClient) getSubclassLevels(ctx context.Context, id string) ([]srdSubclassLevel, error) {
	var out []srdSubclassLevel
	if _, err := c.getJSON(ctx, fmt.Sprintf("subclasses/%s/levels", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *srdClient) listClassSubclasses(ctx context.Context, classID string) (*srdList, bool, error) {
	var out srdList
	found, err := c.getJSON(ctx, fmt.Sprintf("classes/%s/subclasses", classID), &out)
	if err != nil || !found {
		return nil, found, err
	}
	return &out, true, nil
}

func (c *srdClient) getTrait(ctx context.Context, id string) (*srdTrait, bool, error) {
	var out srdTrait
	found, err := c.getJSON(ctx, "traits/"+id, &out)
	if err != nil || !found {
		return nil, found, err
	}
	return &out, true, nil
}
