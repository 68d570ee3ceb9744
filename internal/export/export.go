// Package export renders a project and its tasks as an XML document.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/ivmart/tracker-service/internal/models"
)

// ProjectXML builds an indented XML document for the project and its tasks.
func ProjectXML(project *models.Project, tasks []models.TaskItem) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("project")
	root.CreateAttr("id", strconv.FormatInt(project.ID, 10))
	root.CreateElement("name").SetText(project.Name)
	root.CreateElement("description").SetText(project.Description)
	root.CreateElement("created_at").SetText(project.CreatedAt.Format(time.RFC3339))

	list := root.CreateElement("tasks")
	for _, t := range tasks {
		el := list.CreateElement("task")
		el.CreateAttr("id", strconv.FormatInt(t.ID, 10))
		el.CreateElement("title").SetText(t.Title)
		el.CreateElement("description").SetText(t.Description)
		el.CreateElement("status").SetText(t.Status)
		el.CreateElement("due_date").SetText(t.DueDate.Format(time.RFC3339))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize project export: %w", err)
	}
	return out, nil
}
