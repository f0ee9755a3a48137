package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"mumbai-homes/content"
	"mumbai-homes/models"
)

// ProjectController handles HTTP requests for the project collection
type ProjectController struct {
	store *content.Store
}

// NewProjectController creates a new ProjectController
func NewProjectController(store *content.Store) *ProjectController {
	return &ProjectController{store: store}
}

// ListProjects handles GET /api/projects
func (c *ProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, c.store.Data().Projects)
}

// GetProject handles GET /api/projects/{id}
func (c *ProjectController) GetProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, err := projectIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, ok := c.store.ProjectByID(id)
	if !ok {
		http.Error(w, fmt.Sprintf("Project %d not found", id), http.StatusNotFound)
		return
	}

	writeJSON(w, project)
}

// AddProject handles POST /admin/projects
// The body is a partial project; missing fields come from the default
// record. Returns the created project including its new id.
func (c *ProjectController) AddProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddProject: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	// The partial must at least name the project
	var probe struct {
		ProjectName string `json:"projectName"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &probe); err != nil {
			log.Printf("❌ AddProject: Invalid request body: %v", err)
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
	}
	if strings.TrimSpace(probe.ProjectName) == "" {
		log.Printf("❌ AddProject: Missing project name")
		http.Error(w, "projectName is required", http.StatusBadRequest)
		return
	}

	project, err := c.store.AddProject(r.Context(), body)
	if err != nil {
		log.Printf("❌ AddProject: Failed to create project: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create project: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ AddProject: Created project id=%d name=%q", project.ID, project.ProjectName)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(project); err != nil {
		log.Printf("❌ AddProject: Error encoding response: %v", err)
	}
}

// UpdateProject handles PUT /admin/projects/{id}
// Replaces the whole record. Updating an id that does not exist is a
// silent no-op on the collection, reported as 404 to the editor.
func (c *ProjectController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateProject: Received %s request to %s", r.Method, r.URL.Path)

	id, err := projectIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var project models.ProjectDetails
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Printf("❌ UpdateProject: Invalid request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(project.ProjectName) == "" {
		log.Printf("❌ UpdateProject: Missing project name")
		http.Error(w, "projectName is required", http.StatusBadRequest)
		return
	}

	if _, ok := c.store.ProjectByID(id); !ok {
		http.Error(w, fmt.Sprintf("Project %d not found", id), http.StatusNotFound)
		return
	}

	if err := c.store.UpdateProjectByID(r.Context(), id, project); err != nil {
		log.Printf("❌ UpdateProject: Failed to save project %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to save project: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateProject: Saved project id=%d", id)
	writeJSON(w, map[string]any{"status": "ok", "id": id})
}

// UpdateProjectDetails handles PUT /admin/project-details
// Legacy single-project clients write here. The collection stays
// authoritative: a collection entry sharing the record's id is patched
// along with the singleton.
func (c *ProjectController) UpdateProjectDetails(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateProjectDetails: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var project models.ProjectDetails
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		log.Printf("❌ UpdateProjectDetails: Invalid request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(project.ProjectName) == "" {
		log.Printf("❌ UpdateProjectDetails: Missing project name")
		http.Error(w, "projectName is required", http.StatusBadRequest)
		return
	}

	if err := c.store.UpdateProjectDetails(r.Context(), project); err != nil {
		log.Printf("❌ UpdateProjectDetails: Failed to save: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save project details: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpdateProjectDetails: Saved singleton id=%d", project.ID)
	writeJSON(w, map[string]any{"status": "ok", "id": project.ID})
}

// DeleteProject handles DELETE /admin/projects/{id}
func (c *ProjectController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProject: Received %s request to %s", r.Method, r.URL.Path)

	id, err := projectIDFromPath(r.URL.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.store.DeleteProjectByID(r.Context(), id); err != nil {
		log.Printf("❌ DeleteProject: Failed to delete project %d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to delete project: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeleteProject: Deleted project id=%d", id)
	writeJSON(w, map[string]any{"status": "ok", "id": id})
}

// projectIDFromPath extracts the numeric project id following the
// "/projects/" segment, tolerating trailing sub-paths like /brochure.
func projectIDFromPath(path string) (int64, error) {
	const marker = "/projects/"
	i := strings.Index(path, marker)
	if i < 0 {
		return 0, fmt.Errorf("missing project id in %q", path)
	}
	rest := path[i+len(marker):]
	if j := strings.Index(rest, "/"); j >= 0 {
		rest = rest[:j]
	}
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", rest)
	}
	return id, nil
}
