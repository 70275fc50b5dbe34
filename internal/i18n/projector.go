package i18n

import "github.com/shamsy/home-services-api/internal/models"

// bilingualFields enumerates every (field, field_ar) pair the catalog
// carries. Projection is closed over this table: the selected variant is
// exposed under the canonical key and the _ar key is always dropped.
var bilingualFields = []string{"title", "description", "price", "details"}

func localize(fields map[string]any, lang Lang) map[string]any {
	for _, f := range bilingualFields {
		arKey := f + "_ar"
		arVal, ok := fields[arKey]
		if !ok {
			continue
		}
		if lang == Arabic {
			fields[f] = arVal
		}
		delete(fields, arKey)
	}
	return fields
}

// ProjectService renders a service in one language. The detail projection
// carries the free-text details pair, the list projection omits it.
func ProjectService(s *models.Service, lang Lang, detail bool) map[string]any {
	fields := map[string]any{
		"id":             s.ID,
		"title":          s.Title,
		"title_ar":       s.TitleAr,
		"description":    s.Description,
		"description_ar": s.DescriptionAr,
		"price":          s.Price,
		"price_ar":       s.PriceAr,
		"image":          s.Image,
		"created_at":     s.CreatedAt,
		"updated_at":     s.UpdatedAt,
	}

	if detail {
		fields["details"] = s.Details
		fields["details_ar"] = s.DetailsAr
	}

	return localize(fields, lang)
}

func ProjectServiceList(services []models.Service, lang Lang) []map[string]any {
	out := make([]map[string]any, 0, len(services))
	for i := range services {
		out = append(out, ProjectService(&services[i], lang, false))
	}
	return out
}

// ProjectServiceRequest renders a submitted request with its service titles
// in the requested language.
func ProjectServiceRequest(r *models.ServiceRequest, lang Lang) map[string]any {
	ids := make([]uint, 0, len(r.Services))
	titles := make([]string, 0, len(r.Services))
	for i := range r.Services {
		s := &r.Services[i]
		ids = append(ids, s.ID)
		if lang == Arabic {
			titles = append(titles, s.TitleAr)
		} else {
			titles = append(titles, s.Title)
		}
	}

	return map[string]any{
		"id":             r.ID,
		"service_titles": titles,
		"user_name":      r.User.FullName,
		"phone_number":   r.PhoneNumber,
		"address":        r.Address,
		"service_day":    r.ServiceDay,
		"created_at":     r.CreatedAt,
		"services":       ids,
	}
}

func ProjectServiceRequestList(requests []models.ServiceRequest, lang Lang) []map[string]any {
	out := make([]map[string]any, 0, len(requests))
	for i := range requests {
		out = append(out, ProjectServiceRequest(&requests[i], lang))
	}
	return out
}
