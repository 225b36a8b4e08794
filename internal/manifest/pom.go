package manifest

import (
	"encoding/xml"
	"fmt"

	"github.com/samber/lo"
)

const (
	pomNamespace      = "http://maven.apache.org/POM/4.0.0"
	pomSchemaInstance = "http://www.w3.org/2001/XMLSchema-instance"
	pomSchemaLocation = "http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd"
	pomModelVersion   = "4.0.0"
	pomPackaging      = "pom"
)

type pom struct {
	XMLName        xml.Name `xml:"project"`
	Namespace      string   `xml:"xmlns,attr"`
	SchemaInstance string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`

	ModelVersion string   `xml:"modelVersion"`
	GroupID      string   `xml:"groupId"`
	ArtifactID   string   `xml:"artifactId"`
	Version      string   `xml:"version"`
	Packaging    string   `xml:"packaging"`
	Modules      []string `xml:"modules>module"`
}

// Render builds an aggregator POM listing one module per project name in
// the given order.
func Render(config Config, names []string) ([]byte, error) {
	prefix := config.ModulePrefix
	if prefix == "" {
		prefix = DefaultModulePrefix
	}
	version := config.Version
	if version == "" {
		version = DefaultVersion
	}

	doc := pom{
		Namespace:      pomNamespace,
		SchemaInstance: pomSchemaInstance,
		SchemaLocation: pomSchemaLocation,
		ModelVersion:   pomModelVersion,
		GroupID:        config.GroupID,
		ArtifactID:     config.ArtifactID,
		Version:        version,
		Packaging:      pomPackaging,
		Modules: lo.Map(names, func(name string, _ int) string {
			return prefix + name
		}),
	}

	data, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to render pom: %w", err)
	}

	return append([]byte(xml.Header), append(data, '\n')...), nil
}
