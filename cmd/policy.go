package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// policyFile mirrors services.DeliveryPolicy in YAML. Absent keys keep the
// default value. Weights are kilograms written as decimal strings.
type policyFile struct {
	VATRate               *string `yaml:"vat_rate"`
	FreeShippingThreshold *int64  `yaml:"free_shipping_threshold"`
	CapThreshold          *int64  `yaml:"cap_threshold"`
	FeeCap                *int64  `yaml:"fee_cap"`

	MetroProvinces       []string `yaml:"metro_provinces"`
	MetroBaseFee         *int64   `yaml:"metro_base_fee"`
	MetroBaseWeightKg    *string  `yaml:"metro_base_weight_kg"`
	RegionalBaseFee      *int64   `yaml:"regional_base_fee"`
	RegionalBaseWeightKg *string  `yaml:"regional_base_weight_kg"`
	WeightStepKg         *string  `yaml:"weight_step_kg"`
	StepFee              *int64   `yaml:"step_fee"`

	Rush *struct {
		Provinces     []string `yaml:"provinces"`
		FeePerLine    *int64   `yaml:"fee_per_line"`
		MaxWeightKg   *string  `yaml:"max_weight_kg"`
		LeadTime      *string  `yaml:"lead_time"`
		BusinessHours *struct {
			Start int `yaml:"start"`
			End   int `yaml:"end"`
		} `yaml:"business_hours"`
	} `yaml:"rush"`
}

// LoadDeliveryPolicy reads a policy file over the defaults. An empty path
// returns services.DefaultDeliveryPolicy.
func LoadDeliveryPolicy(path string) (services.DeliveryPolicy, error) {
	if path == "" {
		return services.DefaultDeliveryPolicy(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return services.DeliveryPolicy{}, fmt.Errorf("failed to open delivery policy: %w", err)
	}
	defer f.Close()

	policy, err := ParseDeliveryPolicy(f)
	if err != nil {
		return services.DeliveryPolicy{}, fmt.Errorf("%s: %w", path, err)
	}
	return policy, nil
}

// ParseDeliveryPolicy decodes YAML strictly: unknown keys are an error.
func ParseDeliveryPolicy(r io.Reader) (services.DeliveryPolicy, error) {
	var file policyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return services.DeliveryPolicy{}, fmt.Errorf("failed to decode delivery policy: %w", err)
	}

	policy := services.DefaultDeliveryPolicy()
	if err := file.apply(&policy); err != nil {
		return services.DeliveryPolicy{}, err
	}
	if err := policy.Validate(); err != nil {
		return services.DeliveryPolicy{}, fmt.Errorf("delivery policy is invalid: %w", err)
	}
	return policy, nil
}

func (f policyFile) apply(p *services.DeliveryPolicy) error {
	var result []error

	if f.VATRate != nil {
		rate, err := decimal.NewFromString(*f.VATRate)
		if err != nil {
			result = append(result, fmt.Errorf("vat_rate: %w", err))
		} else {
			p.VATRate = rate
		}
	}
	setMoney(&p.FreeShippingThreshold, f.FreeShippingThreshold)
	setMoney(&p.CapThreshold, f.CapThreshold)
	setMoney(&p.FeeCap, f.FeeCap)
	setMoney(&p.MetroBaseFee, f.MetroBaseFee)
	setMoney(&p.RegionalBaseFee, f.RegionalBaseFee)
	setMoney(&p.StepFee, f.StepFee)

	result = append(result,
		setWeight("metro_base_weight_kg", &p.MetroBaseWeight, f.MetroBaseWeightKg),
		setWeight("regional_base_weight_kg", &p.RegionalBaseWeight, f.RegionalBaseWeightKg),
		setWeight("weight_step_kg", &p.WeightStep, f.WeightStepKg),
		setProvinces("metro_provinces", &p.MetroProvinces, f.MetroProvinces),
	)

	if rush := f.Rush; rush != nil {
		setMoney(&p.RushFeePerLine, rush.FeePerLine)
		result = append(result,
			setWeight("rush.max_weight_kg", &p.RushMaxWeight, rush.MaxWeightKg),
			setProvinces("rush.provinces", &p.RushProvinces, rush.Provinces),
		)
		if rush.LeadTime != nil {
			d, err := time.ParseDuration(*rush.LeadTime)
			if err != nil {
				result = append(result, fmt.Errorf("rush.lead_time: %w", err))
			} else {
				p.RushLeadTime = d
			}
		}
		if h := rush.BusinessHours; h != nil {
			p.BusinessHoursStart, p.BusinessHoursEnd = h.Start, h.End
		}
	}

	return errors.Join(result...)
}

func setMoney(dst *kernel.Money, v *int64) {
	if v != nil {
		*dst = kernel.Money(*v)
	}
}

func setWeight(key string, dst *kernel.Weight, v *string) error {
	if v == nil {
		return nil
	}
	w, err := kernel.ParseWeight(*v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = w
	return nil
}

func setProvinces(key string, dst *[]kernel.Province, names []string) error {
	if names == nil {
		return nil
	}
	provinces := make([]kernel.Province, 0, len(names))
	for _, name := range names {
		p, err := kernel.NewProvince(name)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		provinces = append(provinces, p)
	}
	*dst = provinces
	return nil
}
