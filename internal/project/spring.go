package project

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
	"github.com/mainul35/dynamic-site-builder-sub000/internal/scaffold"
)

const (
	springBootVersion = "3.2.5"
	javaVersion       = "17"
	groupID           = "com.example"
)

// SpringProject carries the identifiers every generated Java source
// shares.
type SpringProject struct {
	Name        string
	ArtifactID  string
	PackageName string
}

// NewSpringProject derives Maven and Java identifiers from the project
// name.
func NewSpringProject(name string) SpringProject {
	artifact := core.Slugify(name)
	if artifact == "" {
		artifact = "exported-site"
	}
	pkg := strings.ReplaceAll(artifact, "-", "")
	if pkg == "" || (pkg[0] >= '0' && pkg[0] <= '9') {
		pkg = "app" + pkg
	}
	return SpringProject{
		Name:        name,
		ArtifactID:  artifact,
		PackageName: groupID + "." + pkg,
	}
}

// SourceDir returns the archive path of the Java source root.
func (p SpringProject) SourceDir() string {
	return "src/main/java/" + strings.ReplaceAll(p.PackageName, ".", "/")
}

// PomXML renders the Maven build descriptor. Lombok is included only
// when at least one API endpoint scaffold exists, since only the
// data-bound controllers use it.
func (p SpringProject) PomXML(withLombok bool) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<project xmlns=\"http://maven.apache.org/POM/4.0.0\"\n")
	b.WriteString("         xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\"\n")
	b.WriteString("         xsi:schemaLocation=\"http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd\">\n")
	b.WriteString("  <modelVersion>4.0.0</modelVersion>\n\n")
	b.WriteString("  <parent>\n")
	b.WriteString("    <groupId>org.springframework.boot</groupId>\n")
	b.WriteString("    <artifactId>spring-boot-starter-parent</artifactId>\n")
	fmt.Fprintf(&b, "    <version>%s</version>\n", springBootVersion)
	b.WriteString("    <relativePath/>\n")
	b.WriteString("  </parent>\n\n")
	fmt.Fprintf(&b, "  <groupId>%s</groupId>\n", groupID)
	fmt.Fprintf(&b, "  <artifactId>%s</artifactId>\n", p.ArtifactID)
	b.WriteString("  <version>0.0.1-SNAPSHOT</version>\n")
	fmt.Fprintf(&b, "  <name>%s</name>\n", xmlEscape(p.Name))
	b.WriteString("\n  <properties>\n")
	fmt.Fprintf(&b, "    <java.version>%s</java.version>\n", javaVersion)
	b.WriteString("  </properties>\n\n")
	b.WriteString("  <dependencies>\n")
	b.WriteString(dependencyXML("org.springframework.boot", "spring-boot-starter-web", false))
	b.WriteString(dependencyXML("org.springframework.boot", "spring-boot-starter-thymeleaf", false))
	if withLombok {
		b.WriteString(dependencyXML("org.projectlombok", "lombok", true))
	}
	b.WriteString("  </dependencies>\n\n")
	b.WriteString("  <build>\n")
	b.WriteString("    <plugins>\n")
	b.WriteString("      <plugin>\n")
	b.WriteString("        <groupId>org.springframework.boot</groupId>\n")
	b.WriteString("        <artifactId>spring-boot-maven-plugin</artifactId>\n")
	b.WriteString("      </plugin>\n")
	b.WriteString("    </plugins>\n")
	b.WriteString("  </build>\n")
	b.WriteString("</project>\n")
	return b.String()
}

func dependencyXML(group, artifact string, optional bool) string {
	var b strings.Builder
	b.WriteString("    <dependency>\n")
	fmt.Fprintf(&b, "      <groupId>%s</groupId>\n", group)
	fmt.Fprintf(&b, "      <artifactId>%s</artifactId>\n", artifact)
	if optional {
		b.WriteString("      <optional>true</optional>\n")
	}
	b.WriteString("    </dependency>\n")
	return b.String()
}

func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// ApplicationJava renders the Spring Boot entry point.
func (p SpringProject) ApplicationJava() string {
	return fmt.Sprintf(`package %s;

import org.springframework.boot.SpringApplication;
import org.springframework.boot.autoconfigure.SpringBootApplication;

@SpringBootApplication
public class Application {

    public static void main(String[] args) {
        SpringApplication.run(Application.class, args);
    }
}
`, p.PackageName)
}

// PageControllerJava renders one MVC controller holding every page
// route. Pages whose route is the root path or the home alias are also
// registered under /.
func (p SpringProject) PageControllerJava(routes []scaffold.PageRoute) string {
	withData := false
	for _, route := range routes {
		if len(route.Endpoints) > 0 {
			withData = true
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "package %s;\n\n", p.PackageName)
	if withData {
		b.WriteString("import lombok.RequiredArgsConstructor;\n")
	}
	b.WriteString("import org.springframework.stereotype.Controller;\n")
	b.WriteString("import org.springframework.ui.Model;\n")
	b.WriteString("import org.springframework.web.bind.annotation.GetMapping;\n")
	b.WriteString("\n@Controller\n")
	if withData {
		b.WriteString("@RequiredArgsConstructor\n")
	}
	b.WriteString("public class PageController {\n")
	if withData {
		b.WriteString("\n    private final DataService dataService;\n")
	}

	for _, route := range routes {
		b.WriteString("\n")
		if route.AliasRoot && route.Route != "/" {
			fmt.Fprintf(&b, "    @GetMapping({\"/\", %q})\n", route.Route)
		} else {
			fmt.Fprintf(&b, "    @GetMapping(%q)\n", route.Route)
		}
		fmt.Fprintf(&b, "    public String %s(Model model) {\n", route.MethodName)
		for _, endpoint := range route.Endpoints {
			fmt.Fprintf(&b, "        model.addAttribute(%q, dataService.%s());\n",
				scaffold.ModelAttribute(endpoint.Endpoint), endpoint.MethodName)
		}
		fmt.Fprintf(&b, "        return %q;\n", route.ViewName)
		b.WriteString("    }\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// ControllerGroup is one generated REST controller and the endpoints it
// serves.
type ControllerGroup struct {
	Name      string
	Endpoints []core.ApiEndpointConfig
}

// GroupControllers buckets endpoint configs by controller name,
// preserving first-seen order.
func GroupControllers(endpoints []core.ApiEndpointConfig) []ControllerGroup {
	var groups []ControllerGroup
	index := make(map[string]int)
	for _, endpoint := range endpoints {
		i, ok := index[endpoint.ControllerName]
		if !ok {
			i = len(groups)
			index[endpoint.ControllerName] = i
			groups = append(groups, ControllerGroup{Name: endpoint.ControllerName})
		}
		groups[i].Endpoints = append(groups[i].Endpoints, endpoint)
	}
	return groups
}

// APIControllerJava renders one REST controller delegating to the data
// service stub.
func (p SpringProject) APIControllerJava(group ControllerGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s;\n\n", p.PackageName)
	b.WriteString("import java.util.Map;\n\n")
	b.WriteString("import lombok.RequiredArgsConstructor;\n")
	b.WriteString("import org.springframework.web.bind.annotation.GetMapping;\n")
	b.WriteString("import org.springframework.web.bind.annotation.RestController;\n")
	b.WriteString("\n@RestController\n@RequiredArgsConstructor\n")
	fmt.Fprintf(&b, "public class %s {\n", group.Name)
	b.WriteString("\n    private final DataService dataService;\n")
	for _, endpoint := range group.Endpoints {
		b.WriteString("\n")
		fmt.Fprintf(&b, "    @GetMapping(%q)\n", endpoint.RoutePath)
		fmt.Fprintf(&b, "    public Map<String, Object> %s() {\n", endpoint.MethodName)
		fmt.Fprintf(&b, "        return dataService.%s();\n", endpoint.MethodName)
		b.WriteString("    }\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// DataServiceJava renders the data-access stub: one method per distinct
// endpoint returning sample rows wrapped under the endpoint's dataPath
// plus a total count. Replace with real persistence.
func (p SpringProject) DataServiceJava(endpoints []core.ApiEndpointConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s;\n\n", p.PackageName)
	b.WriteString("import java.util.LinkedHashMap;\n")
	b.WriteString("import java.util.List;\n")
	b.WriteString("import java.util.Map;\n\n")
	b.WriteString("import org.springframework.stereotype.Service;\n")
	b.WriteString("\n/**\n")
	b.WriteString(" * Sample data backing the generated API endpoints. Swap the bodies\n")
	b.WriteString(" * for repository calls once a datasource is configured.\n")
	b.WriteString(" */\n")
	b.WriteString("@Service\npublic class DataService {\n")

	for _, endpoint := range endpoints {
		rows := scaffold.SampleRows(endpoint.MethodName)
		b.WriteString("\n")
		fmt.Fprintf(&b, "    public Map<String, Object> %s() {\n", endpoint.MethodName)
		b.WriteString("        List<Map<String, Object>> rows = List.of(\n")
		for i, row := range rows {
			b.WriteString(javaRowLiteral(row, "            "))
			if i < len(rows)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("        );\n")
		b.WriteString("        Map<String, Object> payload = new LinkedHashMap<>();\n")
		fmt.Fprintf(&b, "        payload.put(%q, rows);\n", endpoint.DataPath)
		b.WriteString("        payload.put(\"total\", rows.size());\n")
		b.WriteString("        return payload;\n")
		b.WriteString("    }\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// javaRowLiteral renders one sample row as Map.ofEntries with a stable
// key order: id first, remaining keys sorted.
func javaRowLiteral(row map[string]any, indent string) string {
	keys := make([]string, 0, len(row))
	for key := range row {
		if key != "id" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := row["id"]; ok {
		keys = append([]string{"id"}, keys...)
	}

	var b strings.Builder
	b.WriteString(indent + "Map.ofEntries(\n")
	for i, key := range keys {
		fmt.Fprintf(&b, "%s    Map.entry(%q, %s)", indent, key, javaValue(row[key]))
		if i < len(keys)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + ")")
	return b.String()
}

func javaValue(v any) string {
	switch value := v.(type) {
	case string:
		return strconv.Quote(value)
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return strconv.Quote(fmt.Sprint(value))
	}
}

// AssetProxyControllerJava renders the runtime asset proxy. It is always
// generated, even with zero dynamic assets, so the interface stays
// stable.
func (p SpringProject) AssetProxyControllerJava() string {
	return fmt.Sprintf(`package %s;

import jakarta.servlet.http.HttpServletRequest;

import org.springframework.beans.factory.annotation.Value;
import org.springframework.http.ResponseEntity;
import org.springframework.http.client.SimpleClientHttpRequestFactory;
import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.web.bind.annotation.PathVariable;
import org.springframework.web.bind.annotation.RequestParam;
import org.springframework.web.bind.annotation.RestController;
import org.springframework.web.client.RestClientException;
import org.springframework.web.client.RestTemplate;

/**
 * Forwards editor-uploaded asset paths to the configured asset
 * repository so dynamic image references resolve at runtime.
 */
@RestController
public class AssetProxyController {

    private final RestTemplate client;

    @Value("${app.assets.base-url}")
    private String baseUrl;

    public AssetProxyController(@Value("${app.assets.fetch-timeout-ms}") int timeoutMs) {
        SimpleClientHttpRequestFactory factory = new SimpleClientHttpRequestFactory();
        factory.setConnectTimeout(timeoutMs);
        factory.setReadTimeout(timeoutMs);
        this.client = new RestTemplate(factory);
    }

    @GetMapping("/uploads/**")
    public ResponseEntity<byte[]> uploads(HttpServletRequest request) {
        return forward(baseUrl + request.getRequestURI());
    }

    @GetMapping("/{namespace}/uploads/**")
    public ResponseEntity<byte[]> namespacedUploads(@PathVariable String namespace, HttpServletRequest request) {
        String path = request.getRequestURI().substring(namespace.length() + 1);
        return forward(baseUrl + path);
    }

    @GetMapping("/proxy")
    public ResponseEntity<byte[]> byUrl(@RequestParam("url") String url) {
        return forward(url);
    }

    private ResponseEntity<byte[]> forward(String target) {
        try {
            return client.getForEntity(target, byte[].class);
        } catch (RestClientException e) {
            return ResponseEntity.notFound().build();
        }
    }
}
`, p.PackageName)
}

// UrlResolverJava renders the template helper that classifies image
// references at render time. Templates call it as @urlResolver.resolve.
func (p SpringProject) UrlResolverJava() string {
	return fmt.Sprintf(`package %s;

import org.springframework.beans.factory.annotation.Value;
import org.springframework.stereotype.Component;

/**
 * Classifies image references for the templates: absolute URLs pass
 * through, upload paths go to the asset proxy, empty values fall back
 * to the bundled placeholder.
 */
@Component("urlResolver")
public class UrlResolver {

    @Value("${app.assets.placeholder-path:/assets/placeholder.svg}")
    private String placeholderPath;

    public String resolve(Object raw) {
        if (raw == null) {
            return placeholderPath;
        }
        String value = raw.toString().trim();
        if (value.isEmpty()) {
            return placeholderPath;
        }
        if (value.startsWith("http://") || value.startsWith("https://")
                || value.startsWith("//") || value.startsWith("data:")) {
            return value;
        }
        if (value.startsWith("/")) {
            return value;
        }
        return "/uploads/" + value;
    }
}
`, p.PackageName)
}
