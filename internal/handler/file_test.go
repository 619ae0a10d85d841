package handler

import (
	"net/http"
	"testing"
)

func fileBody() map[string]interface{} {
	return map[string]interface{}{
		"category":      "Regular",
		"surveyNumber":  "123/4A",
		"district":      "Madurai",
		"taluk":         "Melur",
		"village":       "Kottampatti",
		"extent":        2.5,
		"extentUnit":    "Acres",
		"owners":        []map[string]string{{"name": "Raman", "mobile": "9876543210"}},
		"contactName":   "Kumar",
		"contactMobile": "9123456780",
	}
}

func (env *testEnv) createFile(t *testing.T, token string) string {
	t.Helper()
	w := env.do(t, token, http.MethodPost, "/api/files", fileBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create file: status = %d, body %s", w.Code, w.Body.String())
	}
	return decodeBody(t, w)["data"].(map[string]interface{})["id"].(string)
}

// TestFileCreate_StatusForcedToNew ignores any caller-supplied status.
func TestFileCreate_StatusForcedToNew(t *testing.T) {
	env := newTestEnv(t)

	body := fileBody()
	body["projectStatus"] = "completed"
	w := env.do(t, env.tokenA, http.MethodPost, "/api/files", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if got := data["projectStatus"].(string); got != "new" {
		t.Errorf("projectStatus = %q, want new", got)
	}
}

func TestFileCreate_Validation(t *testing.T) {
	env := newTestEnv(t)

	body := fileBody()
	body["contactMobile"] = "12345"
	w := env.do(t, env.tokenA, http.MethodPost, "/api/files", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad mobile: status = %d, want 400", w.Code)
	}

	body = fileBody()
	body["category"] = "Commercial"
	w = env.do(t, env.tokenA, http.MethodPost, "/api/files", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad category: status = %d, want 400", w.Code)
	}
}

func TestFileUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	id := env.createFile(t, env.tokenA)

	// any transition between the four statuses is legal
	for _, status := range []string{"handling", "hold", "completed", "new"} {
		w := env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id+"/status",
			map[string]interface{}{"projectStatus": status})
		if w.Code != http.StatusOK {
			t.Errorf("status %s: code = %d, body %s", status, w.Code, w.Body.String())
		}
	}

	w := env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id+"/status",
		map[string]interface{}{"projectStatus": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status: code = %d, want 400", w.Code)
	}
}

// TestFileHandlingStatus_PartialSemantics distinguishes absent fields
// from fields explicitly cleared to "".
func TestFileHandlingStatus_PartialSemantics(t *testing.T) {
	env := newTestEnv(t)
	id := env.createFile(t, env.tokenA)

	w := env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id+"/handling-status",
		map[string]interface{}{"fileStatus": "In Progress", "remarks": "waiting on DTCP"})
	if w.Code != http.StatusOK {
		t.Fatalf("handling-status: code = %d, body %s", w.Code, w.Body.String())
	}

	// absent fields keep their value
	w = env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id+"/handling-status",
		map[string]interface{}{"dwgStatus": "Completed"})
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if got := data["fileStatus"].(string); got != "In Progress" {
		t.Errorf("fileStatus = %q, want In Progress", got)
	}
	if got := data["dwgStatus"].(string); got != "Completed" {
		t.Errorf("dwgStatus = %q, want Completed", got)
	}

	// explicit empty string clears
	w = env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id+"/handling-status",
		map[string]interface{}{"fileStatus": ""})
	data = decodeBody(t, w)["data"].(map[string]interface{})
	if got := data["fileStatus"].(string); got != "" {
		t.Errorf("fileStatus = %q, want cleared", got)
	}
	if got := data["dwgStatus"].(string); got != "Completed" {
		t.Errorf("dwgStatus = %q, want Completed after clearing fileStatus", got)
	}

	// out-of-enum values are rejected
	w = env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id+"/handling-status",
		map[string]interface{}{"formsStatus": "Lost"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad formsStatus: code = %d, want 400", w.Code)
	}
}

// TestFileUpdate_Idempotent applies the same partial payload twice and
// expects the same state apart from updatedAt.
func TestFileUpdate_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	id := env.createFile(t, env.tokenA)

	payload := map[string]interface{}{"village": "Vadipatti", "notes": "corner plot"}

	first := env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id, payload)
	if first.Code != http.StatusOK {
		t.Fatalf("first update: code = %d, body %s", first.Code, first.Body.String())
	}
	second := env.do(t, env.tokenA, http.MethodPut, "/api/files/"+id, payload)
	if second.Code != http.StatusOK {
		t.Fatalf("second update: code = %d", second.Code)
	}

	a := decodeBody(t, first)["data"].(map[string]interface{})
	b := decodeBody(t, second)["data"].(map[string]interface{})
	delete(a, "updatedAt")
	delete(b, "updatedAt")
	for k, v := range a {
		switch v.(type) {
		case string, float64, bool:
			if b[k] != v {
				t.Errorf("field %s = %v after second update, want %v", k, b[k], v)
			}
		}
	}
}

func TestFileOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)
	id := env.createFile(t, env.tokenA)

	foreign := env.do(t, env.tokenB, http.MethodGet, "/api/files/"+id, nil)
	missing := env.do(t, env.tokenB, http.MethodGet, "/api/files/nope", nil)
	if foreign.Code != http.StatusNotFound || foreign.Body.String() != missing.Body.String() {
		t.Errorf("foreign response %q differs from missing-id response %q",
			foreign.Body.String(), missing.Body.String())
	}
}

func TestFileDashboard(t *testing.T) {
	env := newTestEnv(t)

	statuses := []string{"new", "new", "handling", "completed", "hold"}
	ids := make([]string, len(statuses))
	for i := range statuses {
		ids[i] = env.createFile(t, env.tokenA)
	}
	for i, status := range statuses {
		if status == "new" {
			continue
		}
		w := env.do(t, env.tokenA, http.MethodPut, "/api/files/"+ids[i]+"/status",
			map[string]interface{}{"projectStatus": status})
		if w.Code != http.StatusOK {
			t.Fatalf("set status: code = %d", w.Code)
		}
	}

	w := env.do(t, env.tokenA, http.MethodGet, "/api/files/stats/dashboard", nil)
	data := decodeBody(t, w)["data"].(map[string]interface{})

	want := map[string]float64{
		"totalFiles":        5,
		"newProjects":       2,
		"handlingProjects":  1,
		"completedProjects": 1,
	}
	for k, v := range want {
		if got := data[k].(float64); got != v {
			t.Errorf("%s = %v, want %v", k, got, v)
		}
	}
}

func TestFileListFilters(t *testing.T) {
	env := newTestEnv(t)

	env.createFile(t, env.tokenA)
	body := fileBody()
	body["district"] = "Theni"
	body["category"] = "RERA"
	w := env.do(t, env.tokenA, http.MethodPost, "/api/files", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: code = %d", w.Code)
	}

	w = env.do(t, env.tokenA, http.MethodGet, "/api/files?district=Theni", nil)
	if got := decodeBody(t, w)["count"].(float64); got != 1 {
		t.Errorf("district filter count = %v, want 1", got)
	}

	w = env.do(t, env.tokenA, http.MethodGet, "/api/files?category=RERA&district=Theni", nil)
	if got := decodeBody(t, w)["count"].(float64); got != 1 {
		t.Errorf("combined filter count = %v, want 1", got)
	}

	w = env.do(t, env.tokenA, http.MethodGet, "/api/files?projectStatus=completed", nil)
	if got := decodeBody(t, w)["count"].(float64); got != 0 {
		t.Errorf("status filter count = %v, want 0", got)
	}
}
