package store

import (
	"encoding/json"

	"mavericks/backend/models"
)

// payloadEnvelope tags the serialized payload with its kind so it can be
// decoded back into the right variant.
type payloadEnvelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

func encodePayload(p models.Payload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(payloadEnvelope{Kind: p.Kind(), Data: data})
}

// decodePayload restores a payload from its envelope. Unknown kinds fall
// back to GenericPayload so old rows survive schema drift.
func decodePayload(raw []byte) (models.Payload, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var env payloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	switch env.Kind {
	case models.ResumeUploadPayload{}.Kind():
		var p models.ResumeUploadPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case models.AssessmentPayload{}.Kind():
		var p models.AssessmentPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case models.MentorSessionPayload{}.Kind():
		var p models.MentorSessionPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case models.PathGeneratedPayload{}.Kind():
		var p models.PathGeneratedPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case models.ModuleCompletedPayload{}.Kind():
		var p models.ModuleCompletedPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case models.LearningSessionPayload{}.Kind():
		var p models.LearningSessionPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case models.HackathonPayload{}.Kind():
		var p models.HackathonPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		var p models.GenericPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		return p, nil
	}
}
