// Package catalog loads questionnaire and weight configuration documents.
//
// Catalog documents are YAML mappings of section_id to section body.
// Section and question order is the document order, so parsing walks
// yaml.Node content pairs instead of decoding into Go maps. Text values
// are either plain scalars (attributed to the document's locale) or
// explicit locale maps; several documents, one per locale, merge into a
// single questionnaire.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// LoadQuestionnaire reads and merges the given catalog documents. The
// first document defines the structure; later documents only contribute
// translations for sections and questions the base already declares.
func LoadQuestionnaire(docs []contract.CatalogDoc) (*schema.Questionnaire, error) {
	if len(docs) == 0 {
		return nil, schema.NewConfigError("no catalog documents configured")
	}

	base, err := parseDocument(docs[0])
	if err != nil {
		return nil, err
	}
	for _, doc := range docs[1:] {
		overlay, err := parseDocument(doc)
		if err != nil {
			return nil, err
		}
		mergeQuestionnaire(base, overlay)
	}
	return base, nil
}

// parseDocument parses one catalog document into a questionnaire.
func parseDocument(doc contract.CatalogDoc) (*schema.Questionnaire, error) {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog document %q: %w", doc.Path, err)
	}
	q, err := ParseQuestionnaire(data, doc.Locale)
	if err != nil {
		return nil, fmt.Errorf("catalog document %q: %w", doc.Path, err)
	}
	return q, nil
}

// ParseQuestionnaire parses catalog YAML. Scalar text values are stored
// under docLocale; mapping values are taken as explicit locale maps.
func ParseQuestionnaire(data []byte, docLocale string) (*schema.Questionnaire, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, schema.NewConfigError("malformed YAML: %v", err)
	}
	mapping, err := documentMapping(&root)
	if err != nil {
		return nil, err
	}

	q := &schema.Questionnaire{}
	if err := eachPair(mapping, func(sectionID string, body *yaml.Node) error {
		section, err := parseSection(sectionID, body, docLocale)
		if err != nil {
			return err
		}
		q.Sections = append(q.Sections, *section)
		return nil
	}); err != nil {
		return nil, err
	}
	if len(q.Sections) == 0 {
		return nil, schema.NewConfigError("catalog defines no sections")
	}
	return q, nil
}

// parseSection parses one section body: a localizable name plus an ordered
// questions mapping.
func parseSection(sectionID string, body *yaml.Node, docLocale string) (*schema.Section, error) {
	if body.Kind != yaml.MappingNode {
		return nil, schema.NewConfigError("section %q must be a mapping", sectionID)
	}

	section := &schema.Section{ID: sectionID}
	err := eachPair(body, func(key string, value *yaml.Node) error {
		switch key {
		case "name":
			text, err := parseText(value, docLocale)
			if err != nil {
				return schema.NewConfigError("section %q name: %v", sectionID, err)
			}
			section.Name = text
		case "questions":
			return eachPair(value, func(questionID string, qBody *yaml.Node) error {
				question, err := parseQuestion(sectionID, questionID, qBody, docLocale)
				if err != nil {
					return err
				}
				section.Questions = append(section.Questions, *question)
				return nil
			})
		default:
			return schema.NewConfigError("section %q has unknown field %q", sectionID, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if section.Name == nil {
		return nil, schema.NewConfigError("section %q is missing required field 'name'", sectionID)
	}
	return section, nil
}

// parseQuestion parses one question body and enforces the closed kind set.
func parseQuestion(sectionID, questionID string, body *yaml.Node, docLocale string) (*schema.Question, error) {
	if body.Kind != yaml.MappingNode {
		return nil, schema.NewConfigError("question %s/%s must be a mapping", sectionID, questionID)
	}

	question := &schema.Question{SectionID: sectionID, ID: questionID}
	err := eachPair(body, func(key string, value *yaml.Node) error {
		switch key {
		case "type":
			question.Kind = schema.QuestionKind(value.Value)
		case "description":
			text, err := parseText(value, docLocale)
			if err != nil {
				return schema.NewConfigError("question %s/%s description: %v", sectionID, questionID, err)
			}
			question.Description = text
		case "sub_questions":
			if value.Kind != yaml.SequenceNode {
				return schema.NewConfigError("question %s/%s sub_questions must be a sequence", sectionID, questionID)
			}
			for _, item := range value.Content {
				text, err := parseText(item, docLocale)
				if err != nil {
					return schema.NewConfigError("question %s/%s sub_questions: %v", sectionID, questionID, err)
				}
				question.SubQuestions = append(question.SubQuestions, text)
			}
		default:
			return schema.NewConfigError("question %s/%s has unknown field %q", sectionID, questionID, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := schema.ValidQuestionKinds[question.Kind]; !ok {
		return nil, schema.NewConfigError("question %s/%s has unknown type %q (must be XO, PJ or PW)", sectionID, questionID, question.Kind)
	}
	if question.Description == nil {
		return nil, schema.NewConfigError("question %s/%s is missing required field 'description'", sectionID, questionID)
	}
	if question.Kind != schema.KindPW && len(question.SubQuestions) > 0 {
		return nil, schema.NewConfigError("question %s/%s declares sub_questions but is type %s", sectionID, questionID, question.Kind)
	}
	return question, nil
}

// parseText parses a localizable value: a scalar attributed to docLocale,
// or a mapping of locale to string.
func parseText(node *yaml.Node, docLocale string) (schema.LocalizedText, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return schema.LocalizedText{docLocale: node.Value}, nil
	case yaml.MappingNode:
		text := schema.LocalizedText{}
		err := eachPair(node, func(locale string, value *yaml.Node) error {
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("locale %q value must be a string", locale)
			}
			text[locale] = value.Value
			return nil
		})
		if err != nil {
			return nil, err
		}
		return text, nil
	default:
		return nil, fmt.Errorf("expected a string or a locale map")
	}
}

// mergeQuestionnaire folds overlay translations into base. Sections and
// questions unknown to the base are ignored; the first document owns the
// structure.
func mergeQuestionnaire(base, overlay *schema.Questionnaire) {
	for i := range overlay.Sections {
		oSec := &overlay.Sections[i]
		bSec := base.Section(oSec.ID)
		if bSec == nil {
			continue
		}
		bSec.Name.Merge(oSec.Name)
		for j := range oSec.Questions {
			oQ := &oSec.Questions[j]
			bQ := bSec.Question(oQ.ID)
			if bQ == nil {
				continue
			}
			bQ.Description.Merge(oQ.Description)
			for k := range oQ.SubQuestions {
				if k < len(bQ.SubQuestions) {
					bQ.SubQuestions[k].Merge(oQ.SubQuestions[k])
				}
			}
		}
	}
}

// documentMapping unwraps the document node down to the top-level mapping.
func documentMapping(root *yaml.Node) (*yaml.Node, error) {
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, schema.NewConfigError("catalog document is empty")
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, schema.NewConfigError("catalog document must be a mapping of section IDs")
	}
	return node, nil
}

// eachPair iterates a mapping node's key/value pairs in document order.
func eachPair(mapping *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if mapping.Kind != yaml.MappingNode {
		return schema.NewConfigError("expected a mapping node")
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if err := fn(mapping.Content[i].Value, mapping.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
